package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Tsuyoshi84/time-tracker/internal/models"
)

// listJSON prints the sessions of a date as a JSON array.
func listJSON(w io.Writer, sessions []models.Session) error {
	b, err := json.Marshal(sessions)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}
