package server

import (
	"sync"

	"github.com/sirupsen/logrus"

	"users-api/internal/config"
	"users-api/internal/logging"
)

// Manager builds the container once per process and hands it to every
// invocation. A Lambda execution environment reuses it across warm starts.
type Manager struct {
	load func() (*config.Config, error)

	once      sync.Once
	container *Container
	err       error
}

// NewManager creates a manager that loads configuration with load
func NewManager(load func() (*config.Config, error)) *Manager {
	return &Manager{load: load}
}

// Container returns the shared container, building it on first use. A
// failed build is remembered and returned to every caller.
func (m *Manager) Container() (*Container, error) {
	m.once.Do(func() {
		m.container, m.err = m.build()
	})
	return m.container, m.err
}

func (m *Manager) build() (*Container, error) {
	cfg, err := m.load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	var fieldLogger logrus.FieldLogger = logger
	fieldLogger = logging.WithServerless(fieldLogger, config.GetServerlessConfig())

	return NewContainer(cfg, fieldLogger)
}
