package db

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestModels_WalletUserIDIsUnique(t *testing.T) {
	s, err := schema.Parse(Models[1], &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	assert.Equal(t, "wallets", s.Table)
	idx := s.LookIndex("idx_wallets_user_id")
	require.NotNil(t, idx)
	assert.Equal(t, "UNIQUE", idx.Class)
}

func TestModels_UserEmailIsUnique(t *testing.T) {
	s, err := schema.Parse(Models[0], &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	idx := s.LookIndex("idx_users_email")
	require.NotNil(t, idx)
	assert.Equal(t, "UNIQUE", idx.Class)
}
