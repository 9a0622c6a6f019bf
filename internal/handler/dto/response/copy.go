package response

import (
	"github.com/jinzhu/copier"
)

// copyInto maps a read view onto its response shape by field name.
func copyInto[T any](src any) (*T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &dst, nil
}

func copySlice[T any, S any](src []S) ([]T, error) {
	dst := make([]T, 0, len(src))
	if err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return dst, nil
}
