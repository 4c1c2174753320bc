package confinit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCaseConvert(t *testing.T) {
	for _, tc := range []struct {
		key      string
		expected map[KeyCase]string
	}{
		{
			key: "fieldOne",
			expected: map[KeyCase]string{
				KeyCaseCamel: "fieldOne",
				KeyCaseKebab: "field-one",
				KeyCaseSnake: "field_one",
			},
		},
		{
			key: "FIELD_ONE",
			expected: map[KeyCase]string{
				KeyCaseCamel: "fieldOne",
				KeyCaseKebab: "field-one",
				KeyCaseSnake: "field_one",
			},
		},
		{
			key: "bug-report-url",
			expected: map[KeyCase]string{
				KeyCaseCamel: "bugReportUrl",
				KeyCaseKebab: "bug-report-url",
				KeyCaseSnake: "bug_report_url",
			},
		},
		{
			key: "HTTPServer",
			expected: map[KeyCase]string{
				KeyCaseCamel: "httpServer",
				KeyCaseKebab: "http-server",
				KeyCaseSnake: "http_server",
			},
		},
		{
			key: "field1",
			expected: map[KeyCase]string{
				KeyCaseCamel: "field1",
				KeyCaseKebab: "field1",
				KeyCaseSnake: "field1",
			},
		},
	} {
		for keyCase, expected := range tc.expected {
			assert.Equal(t, expected, keyCase.convert(tc.key), "%s as %s", tc.key, keyCase)
		}
	}
}

func TestParseKeyCase(t *testing.T) {
	for s, expected := range map[string]KeyCase{
		"camel": KeyCaseCamel,
		"kebab": KeyCaseKebab,
		"snake": KeyCaseSnake,
		"Snake": KeyCaseSnake,
	} {
		actual, err := ParseKeyCase(s)
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	}

	_, err := ParseKeyCase("screaming")
	assert.Error(t, err)
}

func TestKeyCaseApply(t *testing.T) {
	data := map[string]interface{}{
		"fieldOne": 1,
		"nestedMap": map[interface{}]interface{}{
			"innerValue": 2,
			3:            "non-string keys pass through",
		},
		"aList": []interface{}{
			map[string]interface{}{
				"listEntry": 4,
			},
			"scalar",
		},
	}
	assert.Equal(t, map[string]interface{}{
		"field_one": 1,
		"nested_map": map[interface{}]interface{}{
			"inner_value": 2,
			3:             "non-string keys pass through",
		},
		"a_list": []interface{}{
			map[string]interface{}{
				"list_entry": 4,
			},
			"scalar",
		},
	}, KeyCaseSnake.apply(data))

	// Non-map roots are returned unchanged.
	assert.Equal(t, "unchanged", KeyCaseSnake.apply("unchanged"))
}
