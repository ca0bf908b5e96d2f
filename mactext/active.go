package mactext

import "sync"

var (
	activeMu  sync.RWMutex
	activeSel = RomanSelection()
)

// SetActive installs the process-wide encoding selection. It is intended to
// be called once at startup from platform or document hints; nothing in the
// engine mutates the selection afterwards.
func SetActive(sel Selection) {
	activeMu.Lock()
	activeSel = sel
	activeMu.Unlock()
}

// Active returns the process-wide encoding selection. The default is the
// Roman script system.
func Active() Selection {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return activeSel
}
