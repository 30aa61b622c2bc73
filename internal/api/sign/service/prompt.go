package signService

import "fmt"

func guidancePrompt(text, language string) string {
	return fmt.Sprintf(`You are an expert %[1]s sign language instructor.

Give detailed step-by-step instructions for signing the following text:
"%[2]s"

For each word or concept include:
1. The step number
2. A clear description of how to form the sign
3. Hand shape and position
4. Any movement involved

Respond in exactly this JSON format:
{
    "steps": [
        {
            "step": 1,
            "description": "detailed instruction",
            "hand_position": "hand shape and position",
            "movement": "movement required, or null"
        }
    ],
    "notes": "additional tips or context"
}

Respond with the JSON only, no other text.`, language, text)
}

func visualGuidancePrompt(text, language string) string {
	return fmt.Sprintf(`You are an expert %[1]s sign language instructor who teaches visually.

Give detailed visual guidance for signing the following text:
"%[2]s"

For each word or concept include:
1. The exact word being signed
2. How to make the sign
3. Hand shape (for example "flat hand", "fist", "index finger pointing")
4. Palm orientation (for example "palm facing down")
5. Where the sign is made (for example "in front of chest")
6. Any movement required
7. Facial expression when it matters grammatically
8. A YouTube search query that finds a demonstration video

Also give general learning tips and mistakes beginners often make.

Respond in exactly this JSON format:
{
    "steps": [
        {
            "step": 1,
            "word": "the word",
            "description": "how to make the sign",
            "hand_shape": "hand shape",
            "palm_orientation": "direction the palm faces",
            "location": "where the sign is made",
            "movement": "movement, or null",
            "facial_expression": "expression, or null",
            "video_search_query": "%[1]s sign for [word]"
        }
    ],
    "video_resources": [
        {
            "title": "How to sign [word] in %[1]s",
            "url": "https://www.handspeak.com/word/[word]",
            "source": "HandSpeak"
        },
        {
            "title": "%[1]s [word] - ASL University",
            "url": "https://www.lifeprint.com/asl101/pages-signs/[first-letter]/[word].htm",
            "source": "Lifeprint"
        }
    ],
    "tips": "tips for learning these signs",
    "common_mistakes": "mistakes beginners often make"
}

Respond with the JSON only, no other text.`, language, text)
}

func handPosePrompt(sign, language string) string {
	return fmt.Sprintf(`You are an expert in %[1]s sign language and 3D hand modeling.

Generate precise 3D hand pose data for the sign "%[2]s".

Each finger has:
- curl: 0.0 (straight) to 1.0 (fully curled into the palm)
- spread: -1.0 (spread inward) to 1.0 (spread outward)

wrist_rotation is in radians around the x, y and z axes.
palm_direction is one of forward, back, up, down, left, right.

Respond in exactly this JSON format:
{
    "pose": {
        "thumb": {"curl": 0.0, "spread": 0.5},
        "index": {"curl": 0.0, "spread": 0.0},
        "middle": {"curl": 0.0, "spread": 0.0},
        "ring": {"curl": 0.0, "spread": 0.0},
        "pinky": {"curl": 0.0, "spread": 0.0},
        "wrist_rotation": {"x": 0.0, "y": 0.0, "z": 0.0},
        "palm_direction": "forward"
    },
    "description": "brief description of how to form this sign"
}

Respond with the JSON only, no other text.`, language, sign)
}
