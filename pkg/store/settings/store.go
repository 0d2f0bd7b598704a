package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
	"github.com/tallyweb/backoffice/pkg/models/domain"
)

// Store persists the company settings object to a JSON file. It is the only
// state that survives a restart; everything else lives in memory.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("settings path is required")
	}
	return &Store{path: path}, nil
}

// DefaultCompanyInfo is returned until the user saves their own details.
func DefaultCompanyInfo() domain.CompanyInfo {
	return domain.CompanyInfo{
		Name:      "TallyWeb",
		TRNNumber: "100123456700003",
		Address:   "123 Business Park, Main Street\nDubai, United Arab Emirates",
	}
}

func (s *Store) Load() (domain.CompanyInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return DefaultCompanyInfo(), nil
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return domain.CompanyInfo{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	var info domain.CompanyInfo
	if err := v.Unmarshal(&info); err != nil {
		return domain.CompanyInfo{}, fmt.Errorf("failed to parse company settings: %w", err)
	}
	return info, nil
}

func (s *Store) Save(info domain.CompanyInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	v.Set("name", info.Name)
	v.Set("trn_number", info.TRNNumber)
	v.Set("address", info.Address)
	v.Set("logo", info.Logo)

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
