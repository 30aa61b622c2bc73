package translateService

import "fmt"

const noSignSentinel = "NO_SIGN_DETECTED"

func recognitionPrompt(language string) string {
	return fmt.Sprintf(`You are an expert sign language interpreter specializing in %[1]s (American Sign Language if ASL, British Sign Language if BSL).

Analyze this image and identify any sign language gesture being made.

Instructions:
1. Look at hand shapes, positions and movement cues
2. Take facial expressions into account when visible, they are part of sign language grammar
3. If you can identify a sign, give its English translation
4. If no clear sign is visible or the image does not show sign language, respond with "%[2]s"

Respond in exactly this JSON format:
{
    "detected": true,
    "text": "the translated word or phrase",
    "confidence": 0.0,
    "description": "brief description of the hand position or gesture"
}

Respond with the JSON only, no other text.`, language, noSignSentinel)
}
