package advisor

import (
	"fmt"
	"math"
	"strings"
)

// Thresholds and rates of the catalog. They are product tuning constants,
// not calibrated against historical outcomes.
const (
	excessCashTrigger   Percent = 3
	excessCashHigh      Percent = 10
	referenceCashYield          = 0.045
	tfsaRoomTrigger             = 1000
	tfsaRoomHigh                = 20000
	tfsaShelteringRate          = 0.20
	rrspRoomTrigger             = 5000
	rrspContributionCap         = 25000
	rrspContributionPct         = 0.15
	rrspMarginalRate            = 0.33
	driftTrigger        Percent = 5
	driftHigh           Percent = 15
	rebalanceCostRate           = 0.003
	harvestLossTrigger  Percent = 8
	harvestTaxRate              = 0.267 // 53.5% marginal rate × 50% inclusion
	harvestHigh                 = 2000
	concentrationLimit  Percent = 25
	concentrationHigh   Percent = 40
	concentrationTarget Percent = 20
)

// catalog is evaluated in this order, which also breaks score ties.
var catalog = []rule{
	deployCashRule,
	tfsaRule,
	rrspRule,
	rebalanceRule,
	taxLossHarvestRule,
	reduceConcentrationRule,
}

func (c *ruleContext) excessCashPct() Percent {
	return c.m.CurrentAllocation.CashPct - c.p.TargetAllocation.CashPct
}

func (c *ruleContext) excessCash() float64 {
	return c.m.TotalValue * float64(c.excessCashPct()) / 100
}

var deployCashRule = rule{
	typ:     DeployCash,
	title:   "Deploy Idle Cash",
	applies: func(c *ruleContext) bool { return c.excessCashPct() > excessCashTrigger },
	benefit: func(c *ruleContext) float64 {
		return c.excessCash() * (c.m.WeightedAnnualReturn - referenceCashYield)
	},
	score: func(c *ruleContext, b float64) float64 {
		return float64(c.excessCashPct())/20*75 + c.share(b)*300
	},
	urgency: func(c *ruleContext, _ float64) Urgency {
		if c.excessCashPct() > excessCashHigh {
			return High
		}
		return Medium
	},
	rationale: func(c *ruleContext, _ float64) string {
		return fmt.Sprintf("%s is sitting in cash earning ~%.1f%% while your target allocation calls for only %s cash.",
			c.money(c.excessCash()), referenceCashYield*100, c.p.TargetAllocation.CashPct.Short())
	},
	details: func(c *ruleContext, b float64) Details {
		return Details{
			num("excessCash", roundUnits(c.excessCash())),
			num("excessCashPct", roundTenth(float64(c.excessCashPct()))),
			num("annualDrag", roundUnits(b)),
		}
	},
}

var tfsaRule = rule{
	typ:     TFSAOptimize,
	title:   "Maximize TFSA Room",
	applies: func(c *ruleContext) bool { return c.p.TFSARoomRemaining > tfsaRoomTrigger },
	benefit: func(c *ruleContext) float64 {
		return math.Min(c.p.TFSARoomRemaining, c.m.TotalValue) * c.m.WeightedAnnualReturn * tfsaShelteringRate
	},
	score: func(c *ruleContext, b float64) float64 {
		return c.p.TFSARoomRemaining/50000*55 + c.share(b)*600
	},
	urgency: func(c *ruleContext, _ float64) Urgency {
		if c.p.TFSARoomRemaining > tfsaRoomHigh {
			return High
		}
		return Medium
	},
	rationale: func(c *ruleContext, _ float64) string {
		return fmt.Sprintf("%s of TFSA contribution room is unused. Shifting taxable holdings inside your TFSA shelters returns from tax permanently.",
			c.money(c.p.TFSARoomRemaining))
	},
	details: func(c *ruleContext, b float64) Details {
		return Details{
			num("tfsaRoom", roundUnits(c.p.TFSARoomRemaining)),
			num("estimatedTaxSaving", roundUnits(b)),
		}
	},
}

var rrspRule = rule{
	typ:     RRSPOptimize,
	title:   "Use RRSP Contribution Room",
	applies: func(c *ruleContext) bool { return c.p.RRSPRoomRemaining > rrspRoomTrigger },
	benefit: func(c *ruleContext) float64 {
		return math.Min(c.p.RRSPRoomRemaining*rrspContributionPct, rrspContributionCap) * rrspMarginalRate
	},
	score: func(c *ruleContext, _ float64) float64 {
		return c.p.RRSPRoomRemaining/100000*45 + 15
	},
	urgency: func(*ruleContext, float64) Urgency { return Medium },
	rationale: func(c *ruleContext, _ float64) string {
		return fmt.Sprintf("%s of RRSP room is available. Contributions reduce your taxable income this year and defer tax on compound growth.",
			c.money(c.p.RRSPRoomRemaining))
	},
	details: func(c *ruleContext, b float64) Details {
		return Details{
			num("rrspRoom", roundUnits(c.p.RRSPRoomRemaining)),
			num("estimatedTaxRefund", roundUnits(b)),
		}
	},
}

var rebalanceRule = rule{
	typ:     Rebalance,
	title:   "Rebalance Portfolio",
	applies: func(c *ruleContext) bool { return c.m.AllocationDrift.Total() > driftTrigger },
	benefit: func(c *ruleContext) float64 {
		return c.m.TotalValue * rebalanceCostRate * float64(c.m.AllocationDrift.Total()) / 10
	},
	score: func(c *ruleContext, _ float64) float64 {
		return float64(c.m.AllocationDrift.Total()) * 4
	},
	urgency: func(c *ruleContext, _ float64) Urgency {
		if c.m.AllocationDrift.Total() > driftHigh {
			return High
		}
		return Medium
	},
	rationale: func(c *ruleContext, _ float64) string {
		equity := c.m.AllocationDrift.EquityDrift
		side := "under"
		if equity > 0 {
			side = "over"
		}
		return fmt.Sprintf("Your portfolio has drifted %.0f%% from target. Equity is %sweight by %.0f%%. Rebalancing restores your intended risk exposure.",
			roundUnits(float64(c.m.AllocationDrift.Total())), side, math.Abs(roundUnits(float64(equity))))
	},
	details: func(c *ruleContext, _ float64) Details {
		d := c.m.AllocationDrift
		return Details{
			num("equityDrift", roundTenth(float64(d.EquityDrift))),
			num("fixedIncomeDrift", roundTenth(float64(d.FixedIncomeDrift))),
			num("totalDrift", roundTenth(float64(d.Total()))),
		}
	},
}

// harvestCandidates returns the positions in loss deep enough to harvest,
// largest loss first.
func (c *ruleContext) harvestCandidates() (symbols []string, total float64) {
	for _, l := range c.m.PositionsInLoss {
		if l.LossPercent > harvestLossTrigger {
			symbols = append(symbols, l.Symbol)
			total += l.UnrealizedLoss
		}
	}
	return symbols, total
}

var taxLossHarvestRule = rule{
	typ:   TaxLossHarvest,
	title: "Tax-Loss Harvest",
	applies: func(c *ruleContext) bool {
		symbols, _ := c.harvestCandidates()
		return len(symbols) > 0
	},
	benefit: func(c *ruleContext) float64 {
		_, total := c.harvestCandidates()
		return total * harvestTaxRate
	},
	score: func(c *ruleContext, b float64) float64 {
		return c.share(b)*500 + 20
	},
	urgency: func(_ *ruleContext, b float64) Urgency {
		if b > harvestHigh {
			return High
		}
		return Medium
	},
	rationale: func(c *ruleContext, _ float64) string {
		symbols, _ := c.harvestCandidates()
		verb := "are"
		if len(symbols) == 1 {
			verb = "is"
		}
		return fmt.Sprintf("%s %s in a loss position. Crystallizing these losses offsets capital gains elsewhere in your portfolio.",
			strings.Join(symbols, ", "), verb)
	},
	details: func(c *ruleContext, b float64) Details {
		symbols, total := c.harvestCandidates()
		return Details{
			text("positions", strings.Join(symbols, ", ")),
			num("totalUnrealizedLoss", roundUnits(total)),
			num("estimatedTaxSaving", roundUnits(b)),
		}
	},
}

var reduceConcentrationRule = rule{
	typ:     ReduceConcentration,
	title:   "Reduce Concentration Risk",
	applies: func(c *ruleContext) bool { return c.m.ConcentrationRisk > concentrationLimit },
	benefit: func(*ruleContext) float64 { return 0 },
	score: func(c *ruleContext, _ float64) float64 {
		return float64(c.m.ConcentrationRisk-concentrationTarget) * 3
	},
	urgency: func(c *ruleContext, _ float64) Urgency {
		if c.m.ConcentrationRisk > concentrationHigh {
			return High
		}
		return Medium
	},
	rationale: func(c *ruleContext, _ float64) string {
		return fmt.Sprintf("%s is %.0f%% of your portfolio. Single-stock concentration adds unsystematic risk that diversification can eliminate.",
			c.m.MostConcentratedHolding, roundUnits(float64(c.m.ConcentrationRisk)))
	},
	details: func(c *ruleContext, _ float64) Details {
		return Details{
			text("holding", c.m.MostConcentratedHolding),
			num("concentration", roundUnits(float64(c.m.ConcentrationRisk))),
			num("targetMax", float64(concentrationTarget)),
		}
	},
}
