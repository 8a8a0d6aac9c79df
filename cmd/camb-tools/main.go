package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/EasterCompany/dex-camb-tools/di"
	"github.com/EasterCompany/dex-camb-tools/languages"
)

// ANSI color codes for formatted output
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "speak":
		runSpeak(args)
	case "translate":
		runTranslate(args)
	case "transcribe":
		runTranscribe(args)
	case "voices":
		runVoices(args)
	case "clone":
		runClone(args)
	case "sound":
		runSound(args)
	case "separate":
		runSeparate(args)
	case "batch":
		runBatch(args)
	case "languages":
		runLanguages()
	case "doctor":
		runDoctor(args)
	case "clean":
		runClean(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("%s[FAIL]%s Unknown command '%s'.\n\n", ColorRed, ColorReset, cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("%s--- Camb Tools ---%s\n", ColorBlue, ColorReset)
	fmt.Print(`Usage: camb-tools <command> [flags]

Commands:
  speak       Convert text to speech
  translate   Translate text between languages
  transcribe  Transcribe speech from an audio file or URL
  voices      List available voices
  clone       Create a custom voice from an audio sample
  sound       Generate sound or music from a text prompt
  separate    Split audio into voice and background stems
  batch       Run translate-then-speak jobs from a file concurrently
  languages   List supported languages and their codes
  doctor      Check API, cache, artifact dir, and host health
  clean       Delete generated audio artifacts

Run 'camb-tools <command> -h' for command flags.
`)
}

func fatal(context string, err error) {
	fmt.Printf("%s[FATAL]%s %s: %v\n", ColorRed, ColorReset, context, err)
	os.Exit(1)
}

// callTool assembles the container, runs one toolkit tool and prints its
// result to stdout.
func callTool(name string, args map[string]any) {
	c, err := di.NewContainer()
	if err != nil {
		fatal("initialization failed", err)
	}
	defer c.Close()

	tool, ok := c.Toolkit.Tool(name)
	if !ok {
		fatal("tool lookup failed", fmt.Errorf("%s is not in the toolkit", name))
	}

	raw, err := json.Marshal(args)
	if err != nil {
		fatal("encoding arguments failed", err)
	}

	out, err := tool.Call(context.Background(), raw)
	if err != nil {
		fatal(name, err)
	}
	fmt.Println(out)
}

// resolveLanguage accepts a provider integer code, a BCP-47 tag like
// "es-mx", or an English name like "spanish".
func resolveLanguage(v string) (int, error) {
	if v == "" {
		return 0, errors.New("language is required")
	}
	if code, err := strconv.Atoi(v); err == nil {
		return code, nil
	}
	if l, ok := languages.Lookup(v); ok {
		return l.Code, nil
	}
	return 0, fmt.Errorf("unknown language %q (run 'camb-tools languages' for the full list)", v)
}

func runSpeak(args []string) {
	fs := flag.NewFlagSet("speak", flag.ExitOnError)
	text := fs.String("text", "", "text to speak, 3-3000 characters")
	language := fs.String("language", "", "BCP-47 language tag (default en-us)")
	voice := fs.Int64("voice", 0, "voice id (default 147320)")
	model := fs.String("model", "", "speech model: mars-flash, mars-pro or mars-instruct")
	speed := fs.Float64("speed", 0, "speech speed between 0.5 and 2.0")
	instructions := fs.String("instructions", "", "delivery instructions, mars-instruct only")
	format := fs.String("format", "", "output format: file_path or base64")
	fs.Parse(args)

	a := map[string]any{"text": *text}
	if *language != "" {
		a["language"] = *language
	}
	if *voice != 0 {
		a["voice_id"] = *voice
	}
	if *model != "" {
		a["speech_model"] = *model
	}
	if *speed != 0 {
		a["speed"] = *speed
	}
	if *instructions != "" {
		a["user_instructions"] = *instructions
	}
	if *format != "" {
		a["output_format"] = *format
	}
	callTool("camb_tts", a)
}

func runTranslate(args []string) {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	text := fs.String("text", "", "text to translate")
	source := fs.String("source", "english", "source language: code, tag or name")
	target := fs.String("target", "", "target language: code, tag or name")
	formality := fs.Int("formality", 0, "1 for formal, 2 for informal")
	fs.Parse(args)

	srcCode, err := resolveLanguage(*source)
	if err != nil {
		fatal("resolving source language", err)
	}
	dstCode, err := resolveLanguage(*target)
	if err != nil {
		fatal("resolving target language", err)
	}

	a := map[string]any{
		"text":            *text,
		"source_language": srcCode,
		"target_language": dstCode,
	}
	if *formality != 0 {
		a["formality"] = *formality
	}
	callTool("camb_translation", a)
}

func runTranscribe(args []string) {
	fs := flag.NewFlagSet("transcribe", flag.ExitOnError)
	url := fs.String("url", "", "audio URL to transcribe")
	file := fs.String("file", "", "local audio file to transcribe")
	language := fs.String("language", "english", "spoken language: code, tag or name")
	fs.Parse(args)

	code, err := resolveLanguage(*language)
	if err != nil {
		fatal("resolving language", err)
	}

	a := map[string]any{"language": code}
	if *url != "" {
		a["audio_url"] = *url
	}
	if *file != "" {
		a["audio_file_path"] = *file
	}
	callTool("camb_transcription", a)
}

func runVoices(args []string) {
	fs := flag.NewFlagSet("voices", flag.ExitOnError)
	refresh := fs.Bool("refresh", false, "bypass the cached catalog")
	fs.Parse(args)

	callTool("camb_voice_list", map[string]any{"refresh": *refresh})
}

func runClone(args []string) {
	fs := flag.NewFlagSet("clone", flag.ExitOnError)
	name := fs.String("name", "", "name for the new voice")
	file := fs.String("file", "", "reference audio sample")
	gender := fs.Int("gender", 0, "gender code: 0 not known, 1 male, 2 female, 9 not applicable")
	age := fs.Int("age", 0, "speaker age")
	description := fs.String("description", "", "voice description")
	fs.Parse(args)

	a := map[string]any{
		"voice_name":      *name,
		"audio_file_path": *file,
		"gender":          *gender,
	}
	if *age != 0 {
		a["age"] = *age
	}
	if *description != "" {
		a["description"] = *description
	}
	callTool("camb_voice_clone", a)
}

func runSound(args []string) {
	fs := flag.NewFlagSet("sound", flag.ExitOnError)
	prompt := fs.String("prompt", "", "description of the sound to generate")
	duration := fs.Float64("duration", 0, "length in seconds")
	audioType := fs.String("type", "", "audio type: music or sound")
	format := fs.String("format", "", "output format: file_path or base64")
	fs.Parse(args)

	a := map[string]any{"prompt": *prompt}
	if *duration != 0 {
		a["duration"] = *duration
	}
	if *audioType != "" {
		a["audio_type"] = *audioType
	}
	if *format != "" {
		a["output_format"] = *format
	}
	callTool("camb_text_to_sound", a)
}

func runSeparate(args []string) {
	fs := flag.NewFlagSet("separate", flag.ExitOnError)
	url := fs.String("url", "", "audio URL to separate")
	file := fs.String("file", "", "local audio file to separate")
	fs.Parse(args)

	a := map[string]any{}
	if *url != "" {
		a["audio_url"] = *url
	}
	if *file != "" {
		a["audio_file_path"] = *file
	}
	callTool("camb_audio_separation", a)
}
