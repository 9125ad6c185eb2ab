package scoring

import (
	"reflect"
	"testing"

	"examsense/internal/model"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"string passthrough", "A", "A"},
		{"nil", nil, ""},
		{"list of keys", []interface{}{"A", "C"}, "A,C"},
		{"string slice", []string{"B", "D"}, "B,D"},
		{"json number", float64(42), "42"},
		{"fractional number", 2.5, "2.5"},
		{"bool", true, "true"},
		{"mixed list", []interface{}{"A", float64(3)}, "A,3"},
	}
	for _, c := range cases {
		if got := Normalize(c.value); got != c.want {
			t.Fatalf("%s: Normalize(%v) = %q, want %q", c.name, c.value, got, c.want)
		}
	}
}

func TestPresent(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"whitespace only", "   \t", false},
		{"empty list", []interface{}{}, false},
		{"empty string slice", []string{}, false},
		{"answer", "A", true},
		{"list with entry", []interface{}{"A"}, true},
		{"zero number still counts", float64(0), true},
	}
	for _, c := range cases {
		if got := Present(c.value); got != c.want {
			t.Fatalf("%s: Present(%v) = %v, want %v", c.name, c.value, got, c.want)
		}
	}
}

func TestNormalizeAllDropsAbsentAnswers(t *testing.T) {
	raw := map[string]interface{}{
		"1": "A",
		"2": []interface{}{"A", "B"},
		"3": "   ",
		"4": []interface{}{},
		"5": nil,
	}
	got := NormalizeAll(raw)
	want := map[string]string{"1": "A", "2": "A,B"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeAll = %v, want %v", got, want)
	}
}

func TestMissingQuestions(t *testing.T) {
	questions := []model.Question{
		{ID: 10, OrderInAssessment: 1},
		{ID: 11, OrderInAssessment: 2},
		{ID: 12, OrderInAssessment: 3},
		{ID: 13, OrderInAssessment: 4},
	}
	// 11 and 12 are "not present": empty string and empty list.
	raw := map[string]interface{}{
		"10": "A",
		"11": "",
		"12": []interface{}{},
		"13": []interface{}{"B"},
	}

	got := MissingQuestions(questions, raw)
	want := []uint{11, 12}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MissingQuestions = %v, want %v", got, want)
	}
}

func TestMissingQuestionsAllAnswered(t *testing.T) {
	questions := []model.Question{{ID: 1}, {ID: 2}}
	raw := map[string]interface{}{"1": "A", "2": "B"}

	if got := MissingQuestions(questions, raw); got != nil {
		t.Fatalf("MissingQuestions = %v, want nil", got)
	}
}
