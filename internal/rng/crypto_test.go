package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	for i := 0; i < 100; i++ {
		val := c.Intn(10)
		a.GreaterOrEqual(val, 0)
		a.Less(val, 10)
	}
}
