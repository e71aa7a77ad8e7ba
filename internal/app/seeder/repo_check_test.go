package seeder_test

import (
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/facility"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/reference"
	"github.com/kceleski/ava-care-compass/internal/app/seeder"
)

var (
	_ seeder.ReferenceRepo = (*reference.Repo)(nil)
	_ seeder.FacilityRepo  = (*facility.Repo)(nil)
	_ seeder.TxRunner      = (*postgres.TxManager)(nil)
)
