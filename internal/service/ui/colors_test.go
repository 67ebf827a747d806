package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystem(t *testing.T) {
	assert.Contains(t, System("conversation reset"), "[System] conversation reset")
}

func TestError(t *testing.T) {
	assert.Contains(t, Error(errors.New("backend down")), "Error: backend down")
}
