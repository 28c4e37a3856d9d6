package models_test

import (
	"path/filepath"

	"github.com/fintrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect(filepath.Join("this", "path", "does", "not", "exist", "db"))
	assert.NotNil(suite.T(), err)
}

// Migration must be idempotent, reconnecting to the same file works.
func (suite *TestSuiteStandard) TestConnectTwice() {
	path := filepath.Join(suite.T().TempDir(), "reconnect.db")

	assert.Nil(suite.T(), models.Connect(path))

	sqlDB, err := models.DB.DB()
	assert.Nil(suite.T(), err)
	sqlDB.Close()

	assert.Nil(suite.T(), models.Connect(path))
}
