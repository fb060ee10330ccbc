package service

import (
	"compliance-cms/internal/models"
)

// passthroughPreparer accepts every upload unchanged, or fails with err.
type passthroughPreparer struct {
	err error
}

func (p passthroughPreparer) Prepare(u *models.Upload) (*models.Upload, error) {
	if p.err != nil {
		return nil, p.err
	}
	return u, nil
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func upload(name string) *models.Upload {
	return &models.Upload{Filename: name, ContentType: "image/png", Ext: ".png", Data: []byte(name)}
}
