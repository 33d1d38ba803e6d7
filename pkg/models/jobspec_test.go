//go:build unit || !integration

package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/cfdops/caseflow/pkg/models"
)

type JobSpecTestSuite struct {
	suite.Suite
}

func (suite *JobSpecTestSuite) TestNormalize() {
	spec := &models.JobSpec{Name: "mesh", Script: "scripts/mesh.sbatch"}
	spec.Normalize()
	suite.NotNil(spec.Resources)
}

func (suite *JobSpecTestSuite) TestCopyIsDeep() {
	spec := &models.JobSpec{
		Name:      "solver",
		Script:    "scripts/solver.sbatch",
		Partition: "compute",
		Resources: &models.Resources{Tasks: 64, Memory: "8GB", TimeLimit: 4 * time.Hour},
		Dependency: &models.Dependency{
			JobID: "4242",
		},
	}

	cp := spec.Copy()
	suite.Equal(spec, cp)

	cp.Resources.Tasks = 128
	cp.Dependency.JobID = "9999"
	suite.Equal(64, spec.Resources.Tasks)
	suite.Equal("4242", spec.Dependency.JobID)
}

func (suite *JobSpecTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		spec    *models.JobSpec
		wantErr bool
	}{
		{
			name: "valid spec",
			spec: &models.JobSpec{
				Name:      "mesh",
				Script:    "scripts/mesh.sbatch",
				Resources: &models.Resources{Tasks: 16, Memory: "4GB"},
			},
			wantErr: false,
		},
		{
			name:    "missing name",
			spec:    &models.JobSpec{Script: "scripts/mesh.sbatch"},
			wantErr: true,
		},
		{
			name:    "name with whitespace",
			spec:    &models.JobSpec{Name: "my mesh", Script: "scripts/mesh.sbatch"},
			wantErr: true,
		},
		{
			name:    "missing script",
			spec:    &models.JobSpec{Name: "mesh"},
			wantErr: true,
		},
		{
			name: "bad memory value",
			spec: &models.JobSpec{
				Name:      "mesh",
				Script:    "scripts/mesh.sbatch",
				Resources: &models.Resources{Memory: "eight gigs"},
			},
			wantErr: true,
		},
		{
			name: "negative task count",
			spec: &models.JobSpec{
				Name:      "mesh",
				Script:    "scripts/mesh.sbatch",
				Resources: &models.Resources{Tasks: -1},
			},
			wantErr: true,
		},
		{
			name: "dependency without job ID",
			spec: &models.JobSpec{
				Name:       "solver",
				Script:     "scripts/solver.sbatch",
				Dependency: &models.Dependency{},
			},
			wantErr: true,
		},
		{
			name: "unknown dependency condition",
			spec: &models.JobSpec{
				Name:       "solver",
				Script:     "scripts/solver.sbatch",
				Dependency: &models.Dependency{JobID: "4242", Condition: "whenever"},
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.spec.Validate()
			if tc.wantErr {
				suite.Error(err)
			} else {
				suite.NoError(err)
			}
		})
	}
}

func (suite *JobSpecTestSuite) TestDependencyClause() {
	dep := &models.Dependency{JobID: "314159"}
	suite.Equal("afterok:314159", dep.Clause())

	dep.Condition = models.DependAfterAny
	suite.Equal("afterany:314159", dep.Clause())
}

func TestJobSpecTestSuite(t *testing.T) {
	suite.Run(t, new(JobSpecTestSuite))
}
