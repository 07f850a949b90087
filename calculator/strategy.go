package calculator

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// 传热系数求解策略链
// 每个场景给出一组按优先级排序的候选模型，取第一个成功者；
// 候选失败只记 Warn，全部失败才算错误

type uOutcome struct {
	U            float64
	Breakdown    *Breakdown
	ThreeZone    *ThreeZoneResult
	RequiredArea float64 // >0 时由模型直接给出所需面积（三区模型）
}

type uCandidate struct {
	name string
	run  func() (*uOutcome, error)
}

func firstSuccess(candidates []uCandidate) (*uOutcome, string, error) {
	var lastErr error
	for _, c := range candidates {
		outcome, err := c.run()
		if err == nil {
			return outcome, c.name, nil
		}
		lastErr = err
		log.WithFields(log.Fields{"candidate": c.name, "err": err}).
			Warn("候选模型失败，尝试下一个")
	}
	return nil, "", fmt.Errorf("所有候选模型均失败: %w", lastErr)
}
