package barajar

import (
	"reflect"

	"github.com/pkg/errors"
)

func sliceElm2Reflect(slice interface{}) (reflect.Value, error) {
	rv := reflect.ValueOf(slice)

	if rv.Kind() == reflect.Slice {
		return rv, nil
	}

	if rv.Kind() != reflect.Ptr {
		return reflect.Value{}, errors.Wrapf(ErrInvalidArgument, "parameter must be slice or pointer of slice, got %T", slice)
	}

	if rv.Elem().Kind() != reflect.Slice {
		return reflect.Value{}, errors.Wrapf(ErrInvalidArgument, "parameter must be slice or pointer of slice, got %T", slice)
	}
	return rv.Elem(), nil
}

// ShuffleAny is shuffling slice order. if slice is not pointer of slice or not slice, return error
//
//   barajar.ShuffleAny(&list, barajar.Seed(2))
func ShuffleAny(slice interface{}, opts ...Opt[ShuffleOpt]) error {

	rv, err := sliceElm2Reflect(slice)
	if err != nil {
		return err
	}

	param, restore := MergeOpts(opts...)
	defer restore(param)

	length := rv.Len()
	if length < 2 {
		return nil
	}

	permute(length, reflect.Swapper(rv.Interface()), param.Param.source())
	return nil
}
