package session

import (
	"encoding/json"
	"errors"

	"github.com/johntran041/jobly-client/internal/client/models"
)

var errEmptyPrincipal = errors.New("empty principal blob")

func encodePrincipal(p *models.Principal) ([]byte, error) {
	return json.Marshal(p)
}

func decodePrincipal(blob []byte) (*models.Principal, error) {
	var p models.Principal
	if err := json.Unmarshal(blob, &p); err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, errEmptyPrincipal
	}
	return &p, nil
}
