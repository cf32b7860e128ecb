package example

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOne(t *testing.T) {
	assert.Equal(t, 3, one(filepath.Join(t.TempDir(), "example1.wav")))
}

func TestTwo(t *testing.T) {
	assert.Equal(t, 2, two(filepath.Join(t.TempDir(), "example2.wav")))
}

func TestThree(t *testing.T) {
	dir := t.TempDir()
	in1, in2 := filepath.Join(dir, "example1.wav"), filepath.Join(dir, "example2.wav")
	one(in1)
	one(in2)
	s := three(in1, in2, filepath.Join(dir, "example3.wav"))
	assert.Equal(t, 44100, s.SampleRate)
	assert.Equal(t, 44100, s.Data.Size())
}
