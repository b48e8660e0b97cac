package client

import (
	"encoding/json"
	"fmt"
	"strconv"

	pkgerrors "github.com/pkg/errors"

	"github.com/videoclk/wrpll/pkg/config"
	"github.com/videoclk/wrpll/pkg/types"
)

func (c *Client) GetDividers(clock int) (*types.ComputeResult, error) {
	ret, err := c.Get("/dividers?clock=" + strconv.Itoa(clock))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get dividers for %d Hz", clock)
	}

	var res types.ComputeResult
	if err := json.Unmarshal([]byte(ret), &res); err != nil {
		return nil, fmt.Errorf("failed to unmarshal compute result: %w", err)
	}

	return &res, nil
}

func (c *Client) GetBudget(clock int) (uint64, error) {
	ret, err := c.Get("/budget?clock=" + strconv.Itoa(clock))
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "failed to get budget for %d Hz", clock)
	}

	budget, err := strconv.ParseUint(ret, 10, 64)
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "failed to parse budget response")
	}

	return budget, nil
}

func (c *Client) Verify() (*types.VerifyReport, error) {
	ret, err := c.Get("/verify")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to run verification")
	}

	var report types.VerifyReport
	if err := json.Unmarshal([]byte(ret), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verify report: %w", err)
	}

	return &report, nil
}

func (c *Client) GetConfig() (*config.RawFileConfig, error) {
	ret, err := c.Get("/config")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get config")
	}

	var conf config.RawFileConfig
	if err := json.Unmarshal([]byte(ret), &conf); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal config")
	}

	return &conf, nil
}

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}
	// Remove "" around JSON string. I don't want to use a JSON decoder just for this.
	ret = ret[1 : len(ret)-1] // remove the surrounding quotes
	return ret, nil
}
