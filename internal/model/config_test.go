package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/sparsetest/internal/model"
)

func TestConfigValidate(t *testing.T) {
	valid := func() model.Config {
		return model.Config{
			BlockSize:   512,
			LogicalSize: 4096,
			WriteEvery:  1024,
			Order:       model.OrderAscending,
			TargetPath:  "/tmp/f",
		}
	}

	tests := map[string]struct {
		config func() model.Config
		expErr bool
	}{
		"Valid config": {
			config: valid,
		},
		"Zero block size": {
			config: func() model.Config { c := valid(); c.BlockSize = 0; return c },
			expErr: true,
		},
		"Block size not multiple of the word size": {
			config: func() model.Config { c := valid(); c.BlockSize = 514; return c },
			expErr: true,
		},
		"Logical size smaller than block size": {
			config: func() model.Config { c := valid(); c.LogicalSize = 511; return c },
			expErr: true,
		},
		"Write every smaller than block size": {
			config: func() model.Config { c := valid(); c.WriteEvery = 256; return c },
			expErr: true,
		},
		"Unknown order": {
			config: func() model.Config { c := valid(); c.Order = "backwards"; return c },
			expErr: true,
		},
		"Missing target": {
			config: func() model.Config { c := valid(); c.TargetPath = ""; return c },
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.config().Validate()

			if test.expErr {
				assert.ErrorIs(t, err, model.ErrNotValid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
