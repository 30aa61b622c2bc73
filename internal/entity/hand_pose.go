package entity

type FingerPose struct {
	Curl   float64 `json:"curl"`
	Spread float64 `json:"spread"`
}

type Rotation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type HandPose struct {
	Thumb         FingerPose `json:"thumb"`
	Index         FingerPose `json:"index"`
	Middle        FingerPose `json:"middle"`
	Ring          FingerPose `json:"ring"`
	Pinky         FingerPose `json:"pinky"`
	WristRotation Rotation   `json:"wrist_rotation"`
	PalmDirection string     `json:"palm_direction"`
}

// RelaxedHandPose is the neutral open hand.
func RelaxedHandPose() HandPose {
	relaxed := FingerPose{Curl: 0.1, Spread: 0.0}
	return HandPose{
		Thumb:         FingerPose{Curl: 0.2, Spread: 0.3},
		Index:         relaxed,
		Middle:        relaxed,
		Ring:          relaxed,
		Pinky:         relaxed,
		WristRotation: Rotation{},
		PalmDirection: "forward",
	}
}

type SignPose struct {
	Sign        string   `json:"sign"`
	Pose        HandPose `json:"pose"`
	Description string   `json:"description"`
}
