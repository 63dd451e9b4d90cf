// Command wisdom-flow fetches a YouTube transcript, runs it through a fabric
// pattern chunk by chunk and drafts a coding project, writing everything to
// ~/output.
//
// Usage:
//
//	# Prompt for a URL (blank answer uses the default video)
//	wisdom-flow
//
//	# Process a given video and also render wisdom.docx
//	wisdom-flow run --url https://youtu.be/ITOZkzjtjUA --docx
//
//	# Process every URL file dropped into the inbox
//	wisdom-flow watch
package main

func main() {
	Execute()
}
