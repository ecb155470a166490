package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func fp(f float64) *float64 { return &f }
func bp(b bool) *bool       { return &b }

func TestBuilder_EmptyMatchesEverything(t *testing.T) {
	pred := NewBuilder().
		Equal("category", nil).
		Range("price", nil, nil).
		Flag("is_active", nil).
		Search("   ", "name").
		Build()

	where, args := pred.Where()
	assert.Equal(t, 0, pred.Len())
	assert.Equal(t, "1=1", where)
	assert.Empty(t, args)
}

func TestBuilder_CombinesConditionsInOrder(t *testing.T) {
	pred := NewBuilder().
		Equal("category", strp("Electrónicos")).
		Range("price", fp(100), fp(1000)).
		Flag("is_featured", bp(false)).
		Search("Pro", "name", "description").
		Build()

	where, args := pred.Where()
	assert.Equal(t,
		"1=1 AND category = ? AND price >= ? AND price <= ? AND is_featured = ? AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)",
		where)
	assert.Equal(t, []any{"Electrónicos", 100.0, 1000.0, false, "%pro%", "%pro%"}, args)
}

func TestBuilder_OpenRange(t *testing.T) {
	where, args := NewBuilder().Range("price", nil, fp(50)).Build().Where()
	assert.Equal(t, "1=1 AND price <= ?", where)
	assert.Equal(t, []any{50.0}, args)

	where, args = NewBuilder().Range("price", fp(0), nil).Build().Where()
	assert.Equal(t, "1=1 AND price >= ?", where)
	assert.Equal(t, []any{0.0}, args)
}

func TestBuilder_SearchEscapesWildcards(t *testing.T) {
	_, args := NewBuilder().Search(`50%_off\`, "name").Build().Where()
	require.Len(t, args, 1)
	assert.Equal(t, `%50\%\_off\\%`, args[0])
}

func TestPredicate_IsDetachedFromBuilder(t *testing.T) {
	b := NewBuilder().Equal("role", strp("ADMIN"))
	pred := b.Build()
	b.Flag("is_active", bp(true))

	assert.Equal(t, 1, pred.Len())

	conds := pred.Conditions()
	conds[0].Column = "tampered"
	where, _ := pred.Where()
	assert.Equal(t, "1=1 AND role = ?", where)
}

// Adding a condition never widens the result set: every extra constraint is AND-ed.
func TestBuilder_AddingConditionsOnlyNarrows(t *testing.T) {
	base, _ := NewBuilder().Equal("category", strp("Audio")).Build().Where()
	narrowed, _ := NewBuilder().Equal("category", strp("Audio")).Flag("is_active", bp(true)).Build().Where()
	assert.Equal(t, base+" AND is_active = ?", narrowed)
}
