package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// TestSnapshotKey returns the storage key for the catalog+ledger snapshot.
func (r *CacheKeyStruct) TestSnapshotKey() string {
	return "smartedurural:tests"
}

// RegisteredUsersKey returns the storage key for the registered-users list.
func (r *CacheKeyStruct) RegisteredUsersKey() string {
	return "smartedurural:registered_users"
}

// ResourcesAccessedKey returns the per-student resources-accessed counter key.
func (r *CacheKeyStruct) ResourcesAccessedKey(studentID string) string {
	return fmt.Sprintf("smartedurural:resources_accessed:%s", studentID)
}

var CacheKey = NewCacheKeyStruct()
