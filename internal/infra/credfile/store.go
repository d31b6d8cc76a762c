// Package credfile implements the credential repository on top of two JSON
// documents: the static application secrets and the live OAuth credential.
// The credential document is overwritten in place after every refresh.
package credfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bossoq/flood-disaster-crawl/config"
	"github.com/bossoq/flood-disaster-crawl/internal/domain/entity"
	domainerrors "github.com/bossoq/flood-disaster-crawl/internal/domain/errors"
	"github.com/bossoq/flood-disaster-crawl/internal/domain/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

type credentialStore struct {
	secretsPath     string
	credentialsPath string
	validate        *validator.Validate
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
}

// New is the constructor for the file-backed credential store.
func New(params Params) repository.CredentialRepository {
	return &credentialStore{
		secretsPath:     params.Config.SecretsPath,
		credentialsPath: params.Config.CredentialsPath,
		validate:        validator.New(),
	}
}

// NewWithPaths builds a store against explicit document paths.
func NewWithPaths(secretsPath, credentialsPath string) repository.CredentialRepository {
	return &credentialStore{
		secretsPath:     secretsPath,
		credentialsPath: credentialsPath,
		validate:        validator.New(),
	}
}

// Secrets loads and validates the static application identity.
func (s *credentialStore) Secrets(_ context.Context) (*entity.Secrets, error) {
	data, err := os.ReadFile(s.secretsPath)
	if err != nil {
		return nil, domainerrors.ErrSecretsLoad.WrapMessage(s.secretsPath)
	}

	secrets := new(entity.Secrets)
	if err := json.Unmarshal(data, secrets); err != nil {
		return nil, domainerrors.ErrSecretsLoad.WrapMessage("decoding secrets document")
	}

	if err := s.validate.Struct(secrets); err != nil {
		return nil, domainerrors.ErrSecretsLoad.WrapMessage(err.Error())
	}

	return secrets, nil
}

// Credential loads the current OAuth credential.
func (s *credentialStore) Credential(_ context.Context) (*entity.Credential, error) {
	data, err := os.ReadFile(s.credentialsPath)
	if err != nil {
		return nil, domainerrors.ErrCredentialLoad.WrapMessage(s.credentialsPath)
	}

	credential := new(entity.Credential)
	if err := json.Unmarshal(data, credential); err != nil {
		return nil, domainerrors.ErrCredentialLoad.WrapMessage("decoding credential document")
	}

	return credential, nil
}

// SaveCredential overwrites the stored credential. The document is written to
// a temporary file first and renamed over the old one so a crash mid-write
// never leaves a truncated credential behind.
func (s *credentialStore) SaveCredential(_ context.Context, credential *entity.Credential) error {
	data, err := json.Marshal(credential)
	if err != nil {
		return domainerrors.ErrCredentialSave.WrapMessage("encoding credential document")
	}

	dir := filepath.Dir(s.credentialsPath)
	tmp, err := os.CreateTemp(dir, ".credentials-*.json")
	if err != nil {
		return domainerrors.ErrCredentialSave.WrapMessage(dir)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return domainerrors.ErrCredentialSave.WrapMessage("writing credential document")
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return domainerrors.ErrCredentialSave.WrapMessage("closing credential document")
	}

	if err := os.Rename(tmp.Name(), s.credentialsPath); err != nil {
		os.Remove(tmp.Name())

		return domainerrors.ErrCredentialSave.WrapMessage(s.credentialsPath)
	}

	return nil
}
