package commands

import (
	"strconv"

	"github.com/slok/sparsetest/internal/model"
)

// orderValue is a boolean flag that selects a write order. When several
// order flags are used the last one on the command line wins.
type orderValue struct {
	target *model.Order
	order  model.Order
}

func (o *orderValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	switch {
	case v:
		*o.target = o.order
	case *o.target == o.order:
		*o.target = model.OrderAscending
	}

	return nil
}

func (o *orderValue) String() string {
	return strconv.FormatBool(*o.target == o.order)
}

func (o *orderValue) IsBoolFlag() bool { return true }
