package models

import (
	"encoding/json"
	"testing"
)

func TestQAUnmarshalAcceptsShortKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want QA
	}{
		{name: "long keys", in: `{"question":"Why Go?","answer":"Simplicity"}`, want: QA{Question: "Why Go?", Answer: "Simplicity"}},
		{name: "short keys", in: `{"q":"Why Go?","a":"Simplicity"}`, want: QA{Question: "Why Go?", Answer: "Simplicity"}},
		{name: "long keys win", in: `{"question":"long","q":"short","a":"x"}`, want: QA{Question: "long", Answer: "x"}},
		{name: "missing answer", in: `{"question":"Why Go?"}`, want: QA{Question: "Why Go?"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got QA
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestQAAnswered(t *testing.T) {
	t.Parallel()

	if (QA{Answer: " \n\t"}).Answered() {
		t.Fatal("whitespace answer must not count")
	}
	if !(QA{Answer: "x"}).Answered() {
		t.Fatal("non-empty answer must count")
	}
}

func TestSubmitRequestDecodesShortKeys(t *testing.T) {
	t.Parallel()

	var req SubmitRequest
	body := `{"upload_id": 3, "qa_list": [{"q":"one","a":"yes"},{"question":"two","answer":""}]}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatal(err)
	}
	if req.UploadID != 3 || len(req.QAList) != 2 || req.QAList[0].Answer != "yes" {
		t.Fatalf("unexpected request: %+v", req)
	}
}
