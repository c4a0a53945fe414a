package phenor

import (
	"math"

	"github.com/maseology/objfunc"
)

// SkillScore summarizes prediction skill against observed transition dates
// over the N sites where both sides are defined.
type SkillScore struct {
	N                    int
	RMSE, NSE, Bias, KGE float64
}

// Skill pairs observations with predictions, dropping sites where either is
// undefined or NaN. An empty pairing returns the zero score.
func Skill(obs, pred []float64) SkillScore {
	n := len(obs)
	if len(pred) < n {
		n = len(pred)
	}
	o := make([]float64, 0, n)
	p := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(obs[i]) || obs[i] == DateUndefined || math.IsNaN(pred[i]) || pred[i] == DateUndefined {
			continue
		}
		o = append(o, obs[i])
		p = append(p, pred[i])
	}
	if len(o) == 0 {
		return SkillScore{}
	}
	return SkillScore{
		N:    len(o),
		RMSE: objfunc.RMSE(o, p),
		NSE:  objfunc.NSE(o, p),
		Bias: objfunc.Bias(o, p),
		KGE:  objfunc.KGE(o, p),
	}
}
