package app

import (
	"log"
	"time"
)

// runPipeline is the continuous capture loop. Each tick it reads a
// frame, runs motion-gated hand tracking and feeds the first detected
// hand (or none) through ProcessFrame. The loop never blocks on a
// request handler and never dies on a per-frame error; it only exits
// when stopCh closes.
//
// Frame pacing runs in two modes: idle at IdleFPS until motion appears,
// then ActiveFPS until motion has been absent for IdleTimeout.
func (a *App) runPipeline(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			camera := a.Camera()

			frame, err := camera.ReadFrame()
			if err != nil {
				a.session.SetCameraConnected(false)
				// An outage is a no-hand frame: the stabilizer must tick
				// toward idle so the gap never counts as held.
				a.ProcessFrame(nil)
				continue
			}
			a.session.SetCameraConnected(true)

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode && time.Since(lastMotionTime) > IdleTimeout {
				activeMode = false
				camera.SetFPS(IdleFPS)
				frameInterval = time.Second / time.Duration(IdleFPS)
				ticker.Reset(frameInterval)
				log.Println("Switched to idle mode")
			}

			// While idle the hand tracker stays cold; an absent hand
			// still has to tick the stabilizer toward idle.
			if !activeMode {
				frame.Close()
				a.ProcessFrame(nil)
				continue
			}

			hands, err := a.Detector().Detect(frame)
			frame.Close()

			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				a.ProcessFrame(nil)
				continue
			}

			if len(hands) == 0 {
				a.ProcessFrame(nil)
				continue
			}

			// Single-hand sentence building: first hand wins.
			a.ProcessFrame(&hands[0])
		}
	}
}
