package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatabaseName(t *testing.T) {
	p, err := parseDatabaseName("projects/test-project/instances/dev-instance/databases/freshmart")
	require.NoError(t, err)

	assert.Equal(t, "projects/test-project", p.projectName())
	assert.Equal(t, "projects/test-project/instances/dev-instance", p.instanceName())
	assert.Equal(t, "projects/test-project/instances/dev-instance/databases/freshmart", p.String())
	assert.Equal(t, "freshmart", p.database)
}

func TestParseDatabaseName_Malformed(t *testing.T) {
	for _, name := range []string{
		"",
		"freshmart",
		"projects/p/instances/i",
		"projects/p/instances//databases/d",
		"project/p/instances/i/databases/d",
		"projects/p/instances/i/databases/d/extra",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseDatabaseName(name)
			assert.Error(t, err)
		})
	}
}
