package tsl1128

import (
	"bufio"
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
)

func (r *Reader) writerTask(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Debugf("Writer task stopped.")
			return
		case command := <-r.writer:
			// The device takes one command per line. Chained
			// commands are split on ';'.
			for _, part := range strings.Split(command, ";") {
				part = strings.TrimSpace(part)

				if part == "" {
					continue
				}

				log.Debugf("Reader outgoing: %s", part)

				_, err := r.stream.Write([]byte(part + "\r\n"))

				if err != nil {
					log.Errorf("Error while writing: %v", err)
					return
				}
			}
		}
	}
}

func (r *Reader) readerTask(ctx context.Context) {
	scanner := bufio.NewScanner(r.stream)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			log.Infof("Reader task stopped.")
			return
		default:
			// Pass on.
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")

		if line == "" {
			continue
		}

		log.Debugf("Reader incoming: %s", line)

		event := r.parser.Feed(line)

		if event == nil {
			continue
		}

		// Notify all reading listeners of the completed response.
		r.lock.RLock()

		for id, v := range r.listeners {
			select {
			case v <- *event:
				continue
			default:
				log.Errorf("Channel of listener '%s' full.", id)
			}
		}

		r.lock.RUnlock()
	}

	if scanner.Err() != nil {
		log.Errorf("Error while reading: %v", scanner.Err())
		return
	}
}
