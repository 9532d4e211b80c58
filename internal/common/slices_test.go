package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendUnique(t *testing.T) {
	s := AppendUnique([]string{"edad"}, "sexo")
	s = AppendUnique(s, "edad")
	assert.Equal(t, []string{"edad", "sexo"}, s)
}

func TestWithout(t *testing.T) {
	cols := []string{"start", "edad", "end", "sexo"}
	drop := map[string]struct{}{"start": {}, "end": {}}

	assert.Equal(t, []string{"edad", "sexo"}, Without(cols, drop))
	assert.Equal(t, cols, Without(cols, nil))
	assert.Empty(t, Without([]string{"start"}, drop))
}
