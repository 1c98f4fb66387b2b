package periods

import (
	"github.com/pkg/errors"
)

// ErrInvalidArgument 参数非法（nil 序列 / 阈值区间倒置 / 未知算法）。
// 调用方用 errors.Is 或 errors.Cause 判断。
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(msg string) error {
	return errors.Wrap(ErrInvalidArgument, msg)
}

func invalidArgumentf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
