package quiz

import "testing"

const strictArray = `[
  {"question":"Q1?","options":["a","b","c","d"],"correct_answer":"a"},
  {"question":"Q2?","options":["w","x","y","z"],"correct_answer":"z"}
]`

func TestParseStrictArray(t *testing.T) {
	qs, err := ParseQuestions(strictArray)
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 2 || qs[1].CorrectAnswer != "z" {
		t.Fatalf("unexpected parse: %+v", qs)
	}
}

func TestParseWrappedObject(t *testing.T) {
	qs, err := ParseQuestions(`{"questions":` + strictArray + `}`)
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions", len(qs))
	}
}

func TestParseFencedMarkdown(t *testing.T) {
	qs, err := ParseQuestions("Here you go:\n```json\n" + strictArray + "\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions", len(qs))
	}
}

func TestParseSingleQuotedLiteral(t *testing.T) {
	qs, err := ParseQuestions(`[{'question':'Q?','options':['a','b','c','d'],'correct_answer':'b'}]`)
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 1 || qs[0].CorrectAnswer != "b" {
		t.Fatalf("unexpected parse: %+v", qs)
	}
}

func TestParseDropsInvalidEntries(t *testing.T) {
	qs, err := ParseQuestions(`[
	  {"question":"ok","options":["a","b","c","d"],"correct_answer":"a"},
	  {"question":"three options","options":["a","b","c"],"correct_answer":"a"},
	  {"question":"answer not present","options":["a","b","c","d"],"correct_answer":"e"}
	]`)
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 1 || qs[0].Question != "ok" {
		t.Fatalf("unexpected survivors: %+v", qs)
	}
}

func TestParseGarbageErrors(t *testing.T) {
	for _, in := range []string{"", "sorry, I cannot help", "[]", `{"questions":[]}`} {
		if _, err := ParseQuestions(in); err == nil {
			t.Fatalf("input %q: expected error", in)
		}
	}
}
