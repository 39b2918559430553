package locale

import (
	"reflect"
	"testing"

	apperrors "github.com/louisbranch/localesync/internal/platform/errors"
)

func mustParse(t *testing.T, data string) *Mapping {
	t.Helper()
	m, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse %q: %v", data, err)
	}
	return m
}

func TestParseKeepsDocumentOrder(t *testing.T) {
	m := mustParse(t, `{"b":"B","a":"A","c":3}`)

	if got := m.Keys(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("expected document order, got %v", got)
	}
	if value, ok := m.Get("c"); !ok || string(value) != "3" {
		t.Fatalf("expected raw number value, got %q (ok=%v)", value, ok)
	}
	if m.Len() != 3 {
		t.Fatalf("expected 3 keys, got %d", m.Len())
	}
}

func TestParseDuplicateKeyLastValueWins(t *testing.T) {
	m := mustParse(t, `{"a":"first","b":"B","a":"second"}`)

	if got := m.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("expected first position kept, got %v", got)
	}
	if value, _ := m.Get("a"); string(value) != `"second"` {
		t.Fatalf("expected last value, got %s", value)
	}
}

func TestParseDecodesEscapedKeys(t *testing.T) {
	m := mustParse(t, `{"caf\u00e9":"x"}`)

	if _, ok := m.Get("café"); !ok {
		t.Fatalf("expected decoded key, got %v", m.Keys())
	}
	if got := string(m.Entries()[0].RawKey); got != `"caf\u00e9"` {
		t.Fatalf("expected raw key preserved, got %s", got)
	}
}

func TestParseRejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "truncated", data: `{"a":"A"`},
		{name: "trailing comma", data: `{"a":"A",}`},
		{name: "array", data: `["a","b"]`},
		{name: "string", data: `"a"`},
		{name: "null", data: `null`},
	}

	for _, tc := range tests {
		_, err := Parse([]byte(tc.data))
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !apperrors.HasCode(err, apperrors.CodeParse) {
			t.Fatalf("%s: expected parse code, got %v", tc.name, err)
		}
	}
}

func TestParseEmptyObject(t *testing.T) {
	m := mustParse(t, " {}\n")
	if m.Len() != 0 {
		t.Fatalf("expected no keys, got %v", m.Keys())
	}
}

func TestSortedOrdersKeysByByteValue(t *testing.T) {
	m := mustParse(t, `{"b":"B","a":"A","B":"upper","a.b":"dot","ä":"umlaut","_":"u"}`)

	sorted, keys := m.Sorted()

	want := []string{"B", "_", "a", "a.b", "b", "ä"}
	if got := sorted.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := keys.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected key list %v, got %v", want, got)
	}
	for _, name := range want {
		before, _ := m.Get(name)
		after, _ := sorted.Get(name)
		if string(before) != string(after) {
			t.Fatalf("value for %q changed: %s -> %s", name, before, after)
		}
	}
	if got := m.Keys(); got[0] != "b" {
		t.Fatalf("expected receiver left unsorted, got %v", got)
	}
}

func TestReconcile(t *testing.T) {
	_, keys := mustParse(t, `{"b":"B","a":"A"}`).Sorted()

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{
			name:   "missing key is filled",
			target: `{"a":"Un"}`,
			want:   "{\n  \"a\": \"Un\",\n  \"b\": \"\"\n}\n",
		},
		{
			name:   "extra key is dropped",
			target: `{"a":"Ein","c":"Drei"}`,
			want:   "{\n  \"a\": \"Ein\",\n  \"b\": \"\"\n}\n",
		},
		{
			name:   "order follows key list",
			target: `{"b":"Dos","a":"Uno"}`,
			want:   "{\n  \"a\": \"Uno\",\n  \"b\": \"Dos\"\n}\n",
		},
		{
			name:   "non-string values pass through",
			target: `{"a":{"x":1},"b":null}`,
			want:   "{\n  \"a\": {\n    \"x\": 1\n  },\n  \"b\": null\n}\n",
		},
		{
			name:   "empty target",
			target: `{}`,
			want:   "{\n  \"a\": \"\",\n  \"b\": \"\"\n}\n",
		},
	}

	for _, tc := range tests {
		got := Reconcile(mustParse(t, tc.target), keys).Encode()
		if string(got) != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestReconcileNilTargetFillsEverything(t *testing.T) {
	_, keys := mustParse(t, `{"a":"A"}`).Sorted()

	out := Reconcile(nil, keys)
	if value, ok := out.Get("a"); !ok || string(value) != `""` {
		t.Fatalf("expected empty string fill, got %s (ok=%v)", value, ok)
	}
}

func TestReconcileEmptyKeyList(t *testing.T) {
	out := Reconcile(mustParse(t, `{"a":"A"}`), nil)
	if out.Len() != 0 {
		t.Fatalf("expected all keys dropped, got %v", out.Keys())
	}
	if got := string(out.Encode()); got != "{}\n" {
		t.Fatalf("expected empty object, got %q", got)
	}
}
