package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupProSens(t *testing.T) {
	msg := LookupProSens("give me a sens like Clix please")
	assert.Contains(t, msg, "Clix")
	assert.Contains(t, msg, "800")
	assert.Contains(t, msg, "8.7")
}

func TestLookupProSensAliases(t *testing.T) {
	// Misspellings and spaced variants still resolve.
	assert.Contains(t, LookupProSens("buga sens?"), "Bugha")
	assert.Contains(t, LookupProSens("what about mr savage"), "MrSavage")
	assert.Contains(t, LookupProSens("PETER BOT settings"), "Peterbot")
}

func TestLookupProSensNoMatch(t *testing.T) {
	assert.Empty(t, LookupProSens("how do I rotate from the storm"))
}
