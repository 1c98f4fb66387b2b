// Package scenario 读取 YAML 场景文件。
//
// 场景里的温度变化与阈值用十进制字符串书写（例如 "1.5"），按 scale 换算成整数单位：
// scale=10 时 "1.5" -> 15。换算后必须是整数且落在 int32（变化）/ int64（阈值）范围内。
package scenario

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// File 场景文件
type File struct {
	Scale     int64      `yaml:"scale"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario 单个场景（原始字符串形式）
type Scenario struct {
	Name   string   `yaml:"name"`
	Deltas []string `yaml:"deltas"`
	Low    string   `yaml:"low"`
	High   string   `yaml:"high"`
}

// Case 换算后的计数输入
type Case struct {
	Name   string
	Deltas []int32 // 文件里缺少 deltas 时为 nil
	Low    int64
	High   int64
}

var (
	minInt32 = decimal.NewFromInt(math.MinInt32)
	maxInt32 = decimal.NewFromInt(math.MaxInt32)
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// Load 读取并解析场景文件（仅支持 .yaml/.yml）
func Load(path string) (*File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, errors.Errorf("不支持的场景文件格式: %s (支持 .yaml, .yml)", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "读取场景文件失败 %s", path)
	}
	return Parse(data)
}

// Parse 解析 YAML 内容
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "解析场景文件失败")
	}
	if f.Scale == 0 {
		f.Scale = 1
	}
	if f.Scale < 1 {
		return nil, errors.Errorf("scale 必须 >= 1, got %d", f.Scale)
	}
	return &f, nil
}

// Cases 把所有场景换算成整数单位
func (f *File) Cases() ([]Case, error) {
	scale := decimal.NewFromInt(f.Scale)
	cases := make([]Case, 0, len(f.Scenarios))
	for i, s := range f.Scenarios {
		name := s.Name
		if name == "" {
			name = "scenario #" + strconv.Itoa(i+1)
		}

		c := Case{Name: name}
		if s.Deltas != nil {
			c.Deltas = make([]int32, len(s.Deltas))
			for j, raw := range s.Deltas {
				v, err := toUnits(raw, scale, minInt32, maxInt32)
				if err != nil {
					return nil, errors.Wrapf(err, "%s: deltas[%d]", name, j)
				}
				c.Deltas[j] = int32(v)
			}
		}

		var err error
		if c.Low, err = toUnits(s.Low, scale, minInt64, maxInt64); err != nil {
			return nil, errors.Wrapf(err, "%s: low", name)
		}
		if c.High, err = toUnits(s.High, scale, minInt64, maxInt64); err != nil {
			return nil, errors.Wrapf(err, "%s: high", name)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// toUnits 十进制字符串 × scale，要求结果为整数且在 [lo, hi] 内
func toUnits(raw string, scale, lo, hi decimal.Decimal) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("值为空")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "无法解析数值 %q", raw)
	}
	units := d.Mul(scale)
	if !units.Equal(units.Truncate(0)) {
		return 0, errors.Errorf("%s × %s 不是整数单位", raw, scale.String())
	}
	if units.LessThan(lo) || units.GreaterThan(hi) {
		return 0, errors.Errorf("%s × %s 超出范围 [%s, %s]", raw, scale.String(), lo.String(), hi.String())
	}
	return units.IntPart(), nil
}
