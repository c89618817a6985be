//go:build integration

package integration

import (
	"net/http"

	"github.com/bnema/faultline/internal/adapters/in/cli/remote"
)

func (s *FaultlineTestSuite) Test01_KillAndRecover() {
	result, err := s.Client.Operate(s.ctx, "kill", testRegion)
	s.Require().NoError(err)
	s.True(result.OK)
	s.Empty(result.Failed)
	s.Len(result.AffectedHandles, 4)

	status, err := s.Client.RegionStatus(s.ctx, testRegion)
	s.Require().NoError(err)
	s.False(status.Up)
	s.Require().NotNil(status.ProcessesRunning)
	s.False(*status.ProcessesRunning)
	s.False(s.proxies.Enabled("roach-east-1"))

	_, err = s.Client.Operate(s.ctx, "recover", testRegion)
	s.Require().NoError(err)
	s.requireUp(true)
	s.True(s.proxies.Enabled("roach-east-1"))
}

func (s *FaultlineTestSuite) Test02_StopIsGraceful() {
	result, err := s.Client.Operate(s.ctx, "stop", testRegion)
	s.Require().NoError(err)
	s.Empty(result.Failed)
	s.requireUp(false)

	for _, unit := range s.sandbox.Units {
		running, err := s.runtime.IsRunning(s.ctx, unit)
		s.Require().NoError(err)
		s.False(running, unit)
	}
}

func (s *FaultlineTestSuite) Test03_PartitionDetachesUnits() {
	result, err := s.Client.Operate(s.ctx, "partition", testRegion)
	s.Require().NoError(err)
	s.Empty(result.Failed)

	for _, unit := range s.sandbox.Units {
		attached, err := s.sandbox.Attached(s.ctx, unit)
		s.Require().NoError(err)
		s.False(attached, unit)
	}

	_, err = s.Client.Operate(s.ctx, "recover", testRegion)
	s.Require().NoError(err)
	for _, unit := range s.sandbox.Units {
		attached, err := s.sandbox.Attached(s.ctx, unit)
		s.Require().NoError(err)
		s.True(attached, unit)
	}
}

func (s *FaultlineTestSuite) Test04_BrownoutKeepsRegionUp() {
	result, err := s.Client.Brownout(s.ctx, testRegion, 250)
	s.Require().NoError(err)
	s.Require().NotNil(result.LatencyMs)
	s.Equal(250, *result.LatencyMs)

	status, err := s.Client.RegionStatus(s.ctx, testRegion)
	s.Require().NoError(err)
	s.True(status.Up)
	s.Require().Len(status.Proxies["roach-east-1"].Toxics, 1)
	s.Equal("latency", status.Proxies["roach-east-1"].Toxics[0].Type)

	// Recover clears the toxic.
	_, err = s.Client.Operate(s.ctx, "recover", testRegion)
	s.Require().NoError(err)
	s.Empty(s.proxies.Toxics("roach-east-1"))
}

func (s *FaultlineTestSuite) Test05_MutationsRequireToken() {
	anonymous := remote.NewClient(s.Client.BaseURL())

	_, err := anonymous.Operate(s.ctx, "kill", testRegion)

	var apiErr *remote.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusUnauthorized, apiErr.StatusCode)

	status, err := anonymous.RegionStatus(s.ctx, testRegion)
	s.Require().NoError(err)
	s.True(status.Up)
}

func (s *FaultlineTestSuite) Test06_UnknownRegion() {
	_, err := s.Client.Operate(s.ctx, "kill", "mars-1")
	s.True(remote.IsNotFound(err))

	ops, err := s.Client.Operations(s.ctx)
	s.Require().NoError(err)
	s.Positive(ops.Total)
}
