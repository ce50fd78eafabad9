package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bracketlint/internal/diag"
)

func TestNoneComparison(t *testing.T) {
	bag, file := lintTemplate(t, "{% if user.name == none %}x{% endif %}{{ a != none }}", NoneComparison{})
	require.Equal(t, 2, bag.Len())

	first := bag.Items()[0]
	assert.Equal(t, diag.LintNoneComparison, first.Code)
	assert.Equal(t, diag.SevWarning, first.Severity)
	require.Len(t, first.Fixes, 1)
	edit := first.Fixes[0].Edits[0]
	assert.Equal(t, "user.name == none", edit.OldText)
	assert.Equal(t, "user.name is none", edit.NewText)
	assert.Equal(t, edit.OldText, string(file.Content[edit.Span.Start():edit.Span.End()]))

	second := bag.Items()[1]
	assert.Equal(t, "a is not none", second.Fixes[0].Edits[0].NewText)
}

func TestNoneComparisonReversedOperands(t *testing.T) {
	bag, _ := lintTemplate(t, "{{ none == x }}", NoneComparison{})
	require.Equal(t, 1, bag.Len())
	assert.Equal(t, "x is none", bag.Items()[0].Fixes[0].Edits[0].NewText)
}

func TestNoneComparisonBothNoneHasNoFix(t *testing.T) {
	bag, _ := lintTemplate(t, "{{ none == none }}", NoneComparison{})
	require.Equal(t, 1, bag.Len())
	assert.Empty(t, bag.Items()[0].Fixes)
}

func TestRedundantNot(t *testing.T) {
	bag, _ := lintTemplate(t, "{{ not not ready }}{{ c and not not (a or b) }}{{ not ready }}", RedundantNot{})
	require.Equal(t, 2, bag.Len())
	assert.Equal(t, "ready", bag.Items()[0].Fixes[0].Edits[0].NewText)
	// замена слабее исходного узла получает скобки
	assert.Equal(t, "(a or b)", bag.Items()[1].Fixes[0].Edits[0].NewText)
}

func TestEmptyBlock(t *testing.T) {
	input := "{% if a %}  {# todo #}\n{% endif %}" +
		"{% for x in xs %}{{ x }}{% endfor %}" +
		"{% for x in xs %}{% else %}none{% endfor %}" +
		"{% block head %}{% endblock %}" +
		"{% macro m() %} {% endmacro %}"
	bag, _ := lintTemplate(t, input, EmptyBlock{})
	assert.Equal(t, []string{
		"empty if body",
		"empty for body",
		"empty block 'head' body",
		"empty macro 'm' body",
	}, messages(bag))
	for _, d := range bag.Items() {
		assert.Len(t, d.Notes, 1)
	}
}

func TestConstantCondition(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"{% if true %}x{% endif %}", []string{"condition is always true"}},
		{"{% if False %}x{% endif %}", []string{"condition is always false"}},
		{"{% if none %}x{% endif %}", []string{"condition is always false"}},
		{"{% if '' %}x{% endif %}", []string{"condition is always false"}},
		{"{% if 'a' %}x{% endif %}", []string{"condition is always true"}},
		{"{% if 0 %}x{% endif %}", []string{"condition is always false"}},
		{"{% if not 1 %}x{% endif %}", []string{"condition is always false"}},
		{"{% if a %}x{% elif 1 %}y{% endif %}", []string{"condition is always true"}},
		{"{{ a if true else b }}", []string{"condition is always true"}},
		{"{% if a %}x{% endif %}", nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			bag, _ := lintTemplate(t, tt.input, ConstantCondition{})
			assert.Equal(t, tt.want, messages(bag))
		})
	}
}

func TestRunUsesEveryRule(t *testing.T) {
	bag, _ := lintTemplate(t, "{% if x == none %}{% endif %}", All()...)
	var got []diag.Code
	for _, d := range bag.Items() {
		got = append(got, d.Code)
	}
	assert.ElementsMatch(t, []diag.Code{diag.LintNoneComparison, diag.LintEmptyBlock}, got)
}

func TestSelect(t *testing.T) {
	rules, err := Select([]string{"empty-block"})
	require.NoError(t, err)
	for _, r := range rules {
		assert.NotEqual(t, "empty-block", r.Name())
	}
	assert.Len(t, rules, len(All())-1)

	_, err = Select([]string{"no-such-rule"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-rule")
}

func TestCodesAreLintCodes(t *testing.T) {
	for _, r := range All() {
		assert.True(t, r.Code().IsLint(), r.Name())
		got, ok := Lookup(r.Name())
		require.True(t, ok)
		assert.Equal(t, r.Code(), got.Code())
	}
}
