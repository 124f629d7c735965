package config

import (
	"fmt"
)

type StoreKeyStruct struct{}

func NewStoreKeyStruct() *StoreKeyStruct {
	return &StoreKeyStruct{}
}

// RecordKey returns the storage key for a single record, e.g. "assignment:abc123".
func (r *StoreKeyStruct) RecordKey(kind, id string) string {
	return fmt.Sprintf("%s:%s", kind, id)
}

// IndexKey returns the storage key for an ordered ID index, e.g. "index:assignments".
func (r *StoreKeyStruct) IndexKey(name string) string {
	return fmt.Sprintf("index:%s", name)
}

var StoreKey = NewStoreKeyStruct()
