package launch

import (
	"fmt"
	"os"
)

// LaunchPipeline connects the output of srcArgs to the input of dstProg
// through an OS pipe. The producer runs to completion before the consumer is
// spawned, so the consumer never starts reading a half-connected pipe; a
// producer that writes more than the pipe buffer holds before exiting will
// therefore stall. dstProg is invoked with no arguments beyond its own name.
//
// When wait is set the call blocks until the consumer exits. Otherwise the
// two stages are sequenced off the caller's goroutine and failures are
// reported on the error stream as they happen. The descriptor table is
// captured before returning, so a redirection restored by the caller may
// close a stream a backgrounded pipeline still expects; this mirrors the
// descriptor inheritance of the interpreter's fork-based ancestor and is a
// known limitation.
func (l *Launcher) LaunchPipeline(srcArgs []string, dstProg string, wait bool) error {
	stdin, stdout, stderr := l.Table.In, l.Table.Out, l.Table.Err

	if wait {
		return l.runPipeline(srcArgs, dstProg, stdin, stdout, stderr)
	}

	go func() {
		_ = l.runPipeline(srcArgs, dstProg, stdin, stdout, stderr)
	}()
	return nil
}

func (l *Launcher) runPipeline(srcArgs []string, dstProg string, stdin, stdout, stderr *os.File) error {
	r, w, err := os.Pipe()
	if err != nil {
		return l.report(fmt.Errorf("failed to establish a pipe: %v", err))
	}

	// Producer: its standard output is the pipe's write end. If it never
	// starts, the consumer still runs and reads EOF.
	src, spawnErr := l.spawn(srcArgs, []*os.File{stdin, w, stderr})
	w.Close()
	if spawnErr == nil {
		_, _ = src.Wait()
	}

	// Consumer: its standard input is the pipe's read end.
	dst, err := l.spawn([]string{dstProg}, []*os.File{r, stdout, stderr})
	r.Close()
	if err != nil {
		return err
	}
	_, err = dst.Wait()
	return err
}
