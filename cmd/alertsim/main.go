package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"AllyBackend/internal/alertsim"
	"AllyBackend/pkg/logger"
	"AllyBackend/pkg/util"
)

// terminalNotifier 用终端响铃和横幅代替移动端的振动/闪屏
type terminalNotifier struct{}

func (terminalNotifier) Alert(message string) {
	for i, d := range alertsim.VibrationPattern {
		time.Sleep(d)
		if i%2 == 1 {
			fmt.Print("\a")
		}
	}
	fmt.Println()
	fmt.Println("==================================")
	fmt.Println("  INCOMING ASSISTANCE ALERT")
	fmt.Println("  " + message)
	fmt.Println("==================================")
	fmt.Println("Press Enter to acknowledge...")
}

func (terminalNotifier) Clear() {
	fmt.Println("Alert acknowledged. Listening for alerts...")
}

func main() {
	lg := logger.Init(logger.LogConfig{Level: util.GetEnvDefault("LOG_LEVEL", "warn")})
	defer lg.Sync()

	minDelay := time.Duration(util.GetIntEnv("SIM_MIN_DELAY_MS")) * time.Millisecond
	maxDelay := time.Duration(util.GetIntEnv("SIM_MAX_DELAY_MS")) * time.Millisecond

	sim := alertsim.New(alertsim.Config{
		MinDelay: minDelay,
		MaxDelay: maxDelay,
	}, terminalNotifier{}, time.Now().UnixNano(), lg)

	fmt.Println("ALLY Alert Simulator (demo, no server connection)")
	fmt.Println("Upcoming events:")
	for _, event := range alertsim.UpcomingEvents {
		fmt.Println("  - " + event)
	}
	fmt.Println("Listening for alerts...")

	// 回车确认当前告警
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			sim.Acknowledge()
		}
	}()

	if err := sim.Run(context.Background()); err != nil {
		logger.Warn("simulator stopped", zap.Error(err))
	}
}
