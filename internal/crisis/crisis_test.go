package crisis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_EventsAreAdverse(t *testing.T) {
	require.NotEmpty(t, Catalog())
	for _, ev := range Catalog() {
		assert.NotEmpty(t, ev.Title)
		assert.NotEmpty(t, ev.Message)
		assert.Len(t, ev.Responses, 2)
		assert.LessOrEqual(t, ev.Effect.Funding, 0.0)
		assert.LessOrEqual(t, ev.Effect.Research, 0.0)
		assert.True(t, ev.Effect.Funding < 0 || ev.Effect.Research < 0,
			"a crisis must cost something: %s", ev.Title)
	}
}
