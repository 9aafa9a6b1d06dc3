package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/montage-io/montage"
)

// REPL holds the state of the interactive session
type REPL struct {
	timeline *montage.Timeline
	track    *montage.Track
	reader   *bufio.Reader
}

func main() {
	fmt.Println("Montage REPL - Interactive Timeline Demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := &REPL{
		reader: bufio.NewReader(os.Stdin),
	}

	for {
		fmt.Print("montage> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			break
		}
	}
}

// handleCommand processes a command, returns false to exit
func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "quit", "exit", "q":
		fmt.Println("Goodbye!")
		return false
	case "help", "h", "?":
		r.showHelp()
	case "new":
		r.cmdNew(args)
	case "load":
		r.cmdLoad(args)
	case "save":
		r.cmdSave(args)
	case "track":
		r.cmdTrack(args)
	case "clip":
		r.cmdClip(args)
	case "gap":
		r.cmdGap(args)
	case "list", "ls":
		r.cmdList()
	case "duration":
		r.cmdDuration()
	case "slice":
		r.cmdSlice(args)
	case "remove":
		r.cmdRemove(args)
	case "find":
		r.cmdFind()
	default:
		fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (r *REPL) showHelp() {
	fmt.Println("Commands:")
	fmt.Println("  new <name>              - Create a new timeline")
	fmt.Println("  load <file>             - Load a timeline document")
	fmt.Println("  save <file>             - Save the timeline to a file")
	fmt.Println("  track <name>            - Add a video track and select it")
	fmt.Println("  clip <name> <frames>    - Append a clip to the selected track (24fps)")
	fmt.Println("  gap <frames>            - Append a gap to the selected track")
	fmt.Println("  list                    - List the selected track's children")
	fmt.Println("  duration                - Print the timeline duration")
	fmt.Println("  slice <frame>           - Slice the selected track at a frame")
	fmt.Println("  remove <frame>          - Remove the item at a frame, filling with a gap")
	fmt.Println("  find                    - List every clip in the timeline")
	fmt.Println("  quit                    - Exit")
}

func (r *REPL) needTimeline() bool {
	if r.timeline == nil {
		fmt.Println("No timeline. Use 'new <name>' first.")
		return false
	}
	return true
}

func (r *REPL) needTrack() bool {
	if !r.needTimeline() {
		return false
	}
	if r.track == nil {
		fmt.Println("No track selected. Use 'track <name>' first.")
		return false
	}
	return true
}

func (r *REPL) cmdNew(args []string) {
	name := "untitled"
	if len(args) > 0 {
		name = strings.Join(args, " ")
	}
	r.timeline = montage.NewTimeline(name)
	r.track = nil
	fmt.Printf("Created timeline %q\n", name)
}

func (r *REPL) cmdLoad(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: load <file>")
		return
	}
	tl, err := montage.ReadFromFile(args[0])
	if err != nil {
		fmt.Printf("Error loading: %v\n", err)
		return
	}
	r.timeline = tl
	r.track = nil
	if tracks := tl.VideoTracks(); len(tracks) > 0 {
		r.track = tracks[0]
	}
	fmt.Printf("Loaded timeline %q\n", tl.Name())
}

func (r *REPL) cmdSave(args []string) {
	if !r.needTimeline() {
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: save <file>")
		return
	}
	if err := r.timeline.WriteToFile(args[0]); err != nil {
		fmt.Printf("Error saving: %v\n", err)
		return
	}
	fmt.Printf("Saved to %s\n", args[0])
}

func (r *REPL) cmdTrack(args []string) {
	if !r.needTimeline() {
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: track <name>")
		return
	}
	r.track = r.timeline.AddVideoTrack(args[0])
	fmt.Printf("Added and selected track %q\n", args[0])
}

func (r *REPL) cmdClip(args []string) {
	if !r.needTrack() {
		return
	}
	if len(args) != 2 {
		fmt.Println("Usage: clip <name> <frames>")
		return
	}
	frames, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Printf("Invalid frame count: %s\n", args[1])
		return
	}
	start, _ := montage.NewRationalTime(0, 24)
	duration, _ := montage.NewRationalTime(frames, 24)
	sr, err := montage.NewTimeRange(start, duration)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	clip, err := montage.NewClip(args[0], sr)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := r.track.Append(clip); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Appended clip %q (%g frames)\n", args[0], frames)
}

func (r *REPL) cmdGap(args []string) {
	if !r.needTrack() {
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: gap <frames>")
		return
	}
	frames, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Printf("Invalid frame count: %s\n", args[0])
		return
	}
	duration, err := montage.NewRationalTime(frames, 24)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	gap, err := montage.NewGap(duration)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := r.track.Append(gap); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Appended gap (%g frames)\n", frames)
}

func (r *REPL) cmdList() {
	if !r.needTrack() {
		return
	}
	count := r.track.ChildrenCount()
	if count == 0 {
		fmt.Println("Track is empty.")
		return
	}
	for i := 0; i < count; i++ {
		child, err := r.track.ChildAt(i)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		rng, err := r.track.RangeOfChildAtIndex(i)
		if err != nil {
			fmt.Printf("  [%d] %T %q\n", i, child, child.Name())
			continue
		}
		fmt.Printf("  [%d] %T %q  start=%g dur=%g\n", i, child, child.Name(), rng.StartTime.Value, rng.Duration.Value)
	}
}

func (r *REPL) cmdDuration() {
	if !r.needTimeline() {
		return
	}
	d, err := r.timeline.Duration()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Duration: %g frames @ %g fps (%.3fs)\n", d.Value, d.Rate, d.Seconds())
}

func (r *REPL) cmdSlice(args []string) {
	if !r.needTrack() {
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: slice <frame>")
		return
	}
	frame, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Printf("Invalid frame: %s\n", args[0])
		return
	}
	at, err := montage.NewRationalTime(frame, 24)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := r.track.SliceAtTime(at, true); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Sliced at frame %g\n", frame)
}

func (r *REPL) cmdRemove(args []string) {
	if !r.needTrack() {
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: remove <frame>")
		return
	}
	frame, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Printf("Invalid frame: %s\n", args[0])
		return
	}
	at, err := montage.NewRationalTime(frame, 24)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := r.track.RemoveAtTime(at, true); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Removed item at frame %g (filled with gap)\n", frame)
}

func (r *REPL) cmdFind() {
	if !r.needTimeline() {
		return
	}
	it := r.timeline.FindClips()
	fmt.Printf("%d clip(s):\n", it.Count())
	for {
		clip, ok := it.Next()
		if !ok {
			break
		}
		sr := clip.SourceRange()
		fmt.Printf("  %q  source=[%g, %g) @ %g fps\n", clip.Name(), sr.StartTime.Value, sr.EndTime().Value, sr.Duration.Rate)
	}
}
