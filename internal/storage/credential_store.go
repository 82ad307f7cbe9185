/**
* Name: 			credential_store.go
* Description: 		users.json 기반 계정 저장소
* Workflow: 		파일 전체 로드 -> 수정 -> 임시 파일에 기록 후 rename
 */

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"AgriMind_FarmAssistant/internal/auth"
	"AgriMind_FarmAssistant/internal/models"

	"go.uber.org/zap"
)

var (
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrCorruptStore       = errors.New("credential store is corrupt")
)

// CorruptStoreError is returned by Load when the backing file exists but cannot be parsed.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("credential store %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error { return e.Err }

func (e *CorruptStoreError) Is(target error) bool { return target == ErrCorruptStore }

type CredentialStore struct {
	path   string
	hasher auth.PasswordHasher
	logger *zap.Logger

	// load-modify-save 구간 단일 writer 보장
	mu sync.Mutex
}

func NewCredentialStore(path string, hasher auth.PasswordHasher, logger *zap.Logger) *CredentialStore {
	if hasher == nil {
		hasher = auth.SHA256Hasher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CredentialStore{path: path, hasher: hasher, logger: logger}
}

func (s *CredentialStore) Path() string { return s.path }

// Load reads the whole account mapping. A missing file is an empty mapping.
func (s *CredentialStore) Load() (map[string]models.Account, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]models.Account{}, nil
	}
	if err != nil {
		return nil, err
	}

	accounts := map[string]models.Account{}
	if err := json.Unmarshal(data, &accounts); err != nil {
		s.logger.Error("CredentialStore.Load(): failed to parse store", zap.String("path", s.path), zap.Error(err))
		return nil, &CorruptStoreError{Path: s.path, Err: err}
	}
	// "null" 은 빈 저장소로 취급
	if accounts == nil {
		accounts = map[string]models.Account{}
	}
	for name, acc := range accounts {
		acc.Username = name
		accounts[name] = acc
	}
	return accounts, nil
}

// Save overwrites the backing file with the full mapping. Keys are written in sorted order.
func (s *CredentialStore) Save(accounts map[string]models.Account) error {
	data, err := json.MarshalIndent(accounts, "", "    ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

func (s *CredentialStore) Register(username, password string, role models.Role) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.Load()
	if err != nil {
		return err
	}
	if _, exists := accounts[username]; exists {
		return ErrUsernameExists
	}

	accounts[username] = models.Account{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.Save(accounts); err != nil {
		return err
	}
	s.logger.Info("CredentialStore.Register(): account created", zap.String("username", username), zap.String("role", string(role)))
	return nil
}

// Authenticate does not distinguish an unknown user from a wrong password.
func (s *CredentialStore) Authenticate(username, password string) (models.Account, error) {
	accounts, err := s.Load()
	if err != nil {
		return models.Account{}, err
	}
	acc, ok := accounts[username]
	if !ok || !s.hasher.Verify(acc.PasswordHash, password) {
		return models.Account{}, ErrInvalidCredentials
	}
	return acc, nil
}
