package alertsim

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// 演示用模拟告警文案
var DefaultAlerts = []string{
	"Assist a user to reach Auditorium Gate.",
	"Guide a visually impaired person to the Cafeteria.",
	"Help a wheelchair user navigate to Block B.",
	"Support a deaf attendee at Registration Desk.",
	"Escort senior citizen to Medical Help Desk.",
}

// 演示用活动列表
var UpcomingEvents = []string{
	"Accessibility Walk — 5 PM",
	"Support Camp — Hall 2",
	"Volunteer Meet — Nov 6",
}

// 振动节奏：暂停/振动交替的毫秒序列
var VibrationPattern = []time.Duration{
	0,
	400 * time.Millisecond,
	100 * time.Millisecond,
	400 * time.Millisecond,
}

// Notifier 告警提示输出（终端响铃/闪烁横幅等）
type Notifier interface {
	// Alert 告警触发，开始提示
	Alert(message string)
	// Clear 告警被确认，停止提示
	Clear()
}

// Config 模拟器配置
type Config struct {
	MinDelay time.Duration // 默认 15s
	MaxDelay time.Duration // 默认 30s
	Alerts   []string
}

// Simulator 本地告警模拟器：随机延时后随机挑一条告警触发，
// 确认后重新排期。和后端完全无关，只做演示
type Simulator struct {
	cfg      Config
	rng      *rand.Rand
	notifier Notifier
	ack      chan struct{}
	log      *zap.Logger
}

func New(cfg Config, notifier Notifier, seed int64, log *zap.Logger) *Simulator {
	if cfg.MinDelay <= 0 {
		cfg.MinDelay = 15 * time.Second
	}
	if cfg.MaxDelay < cfg.MinDelay {
		cfg.MaxDelay = 2 * cfg.MinDelay
	}
	if len(cfg.Alerts) == 0 {
		cfg.Alerts = DefaultAlerts
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Simulator{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		notifier: notifier,
		ack:      make(chan struct{}, 1),
		log:      log,
	}
}

// NextDelay 下一次触发前的随机等待，均匀落在 [MinDelay, MaxDelay]
func (s *Simulator) NextDelay() time.Duration {
	span := s.cfg.MaxDelay - s.cfg.MinDelay
	if span <= 0 {
		return s.cfg.MinDelay
	}
	return s.cfg.MinDelay + time.Duration(s.rng.Int63n(int64(span)+1))
}

// Pick 随机挑一条告警文案
func (s *Simulator) Pick() string {
	return s.cfg.Alerts[s.rng.Intn(len(s.cfg.Alerts))]
}

// Acknowledge 确认当前告警，停止提示并重新排期
func (s *Simulator) Acknowledge() {
	select {
	case s.ack <- struct{}{}:
	default:
	}
}

// Run 主循环：等待 → 触发 → 等确认 → 重新排期，直到 ctx 取消
func (s *Simulator) Run(ctx context.Context) error {
	for {
		delay := s.NextDelay()
		s.log.Info("next mock alert scheduled", zap.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		message := s.Pick()
		s.log.Info("mock alert fired", zap.String("message", message))
		s.notifier.Alert(message)

		select {
		case <-ctx.Done():
			s.notifier.Clear()
			return ctx.Err()
		case <-s.ack:
			s.notifier.Clear()
		}
	}
}
