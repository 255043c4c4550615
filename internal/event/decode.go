package event

import "encoding/json"

// DecodePayload returns the payload as T. In-process buses carry the typed struct
// directly; payloads read back from a dead-letter file arrive as generic maps and
// are converted through JSON.
func DecodePayload[T any](payload interface{}) (T, error) {
	if v, ok := payload.(T); ok {
		return v, nil
	}
	var out T
	data, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(data, &out)
	return out, err
}
