package modkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeps_Location(t *testing.T) {
	var zero Deps
	assert.Equal(t, time.Local, zero.Location())

	brt := time.FixedZone("BRT", -3*3600)
	assert.Equal(t, brt, Deps{Loc: brt}.Location())
}
