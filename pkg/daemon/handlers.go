package daemon

import (
	"fmt"
	"net/http"
	"runtime"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/videoclk/wrpll/pkg/config"
	"github.com/videoclk/wrpll/pkg/reftable"
	"github.com/videoclk/wrpll/pkg/types"
	"github.com/videoclk/wrpll/pkg/utils/ptr"
	"github.com/videoclk/wrpll/pkg/version"
	"github.com/videoclk/wrpll/pkg/wrpll"
)

func clockParam(c *gin.Context) (int, bool) {
	clock, err := strconv.Atoi(c.Query("clock"))
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, "clock must be an integer number of Hz")
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return 0, false
	}

	if clock <= 0 {
		err := fmt.Errorf("clock must be positive, got %d", clock)
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return 0, false
	}

	return clock, true
}

// effectiveBudget applies per-panel config overrides on top of the stock
// classification.
func effectiveBudget(clock int) (uint64, bool) {
	if ppm, ok := conf.BudgetOverrideFor(clock); ok {
		return ppm, true
	}
	return wrpll.BudgetFor(clock), false
}

func getDividers(c *gin.Context) {
	clock, ok := clockParam(c)
	if !ok {
		return
	}

	budget, overridden := effectiveBudget(clock)
	d := wrpll.ComputeDividersWithBudget(clock, budget)
	if !d.Valid() {
		err := fmt.Errorf("no legal dividers for %d Hz", clock)
		c.IndentedJSON(http.StatusUnprocessableEntity, err.Error())
		_ = c.AbortWithError(http.StatusUnprocessableEntity, err)
		return
	}

	c.IndentedJSON(http.StatusOK, types.NewComputeResult(clock, budget, overridden, d))
}

func getBudget(c *gin.Context) {
	clock, ok := clockParam(c)
	if !ok {
		return
	}

	budget, _ := effectiveBudget(clock)
	c.IndentedJSON(http.StatusOK, budget)
}

func getVerify(c *gin.Context) {
	mismatches, err := reftable.Verify(c.Request.Context(), runtime.NumCPU())
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.IndentedJSON(http.StatusOK, types.VerifyReport{
		Total:      len(reftable.TMDS),
		Mismatches: mismatches,
	})
}

func getConfig(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, &config.RawFileConfig{
		AllowNonRootAccess: ptr.To(conf.AllowNonRootAccess()),
		BudgetOverrides:    conf.BudgetOverrides(),
	})
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}
