package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommentField_Missing(t *testing.T) {
	assert.Equal(t, []string{}, ParseCommentField(""))
	assert.Equal(t, []string{}, ParseCommentField("   "))
}

func TestParseCommentField_JSONList(t *testing.T) {
	got := ParseCommentField(`["good course", "well explained"]`)
	assert.Equal(t, []string{"good course", "well explained"}, got)
}

func TestParseCommentField_PythonLiteralList(t *testing.T) {
	got := ParseCommentField(`['good course', 'well explained']`)
	assert.Equal(t, []string{"good course", "well explained"}, got)
}

func TestParseCommentField_Scalar(t *testing.T) {
	got := ParseCommentField("just one comment")
	assert.Equal(t, []string{"just one comment"}, got)
}

func TestParseCommentField_UnparseableListFallsBackToScalar(t *testing.T) {
	// Embedded apostrophe defeats the naive quote substitution; the raw value
	// survives as a single element.
	raw := `['it's great']`
	assert.Equal(t, []string{raw}, ParseCommentField(raw))
}
