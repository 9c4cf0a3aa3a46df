package adapter

import "encoding/json"

// JSON abstracts event payload encoding so publishing can be mocked
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type stdJSON struct{}

// NewJSON returns the encoding/json backed implementation
func NewJSON() JSON {
	return stdJSON{}
}

func (stdJSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (stdJSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
