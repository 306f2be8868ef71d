package renderer

import (
	"context"
	"encoding/json"

	"report-srv/internal/model"
)

// renderJSON serializes the dataset as is, so every promised key reaches the client.
func renderJSON(_ context.Context, in Input) ([]byte, error) {
	data := in.Data
	if data == nil {
		data = model.Dataset{}
	}
	return json.Marshal(data)
}
