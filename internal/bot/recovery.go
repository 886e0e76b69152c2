package bot

import "jordanella.com/autoscape-go/internal/input"

// emptyLastSlot opens the last inventory slot's menu and drops the item:
// right click the slot, wait for the menu, left click the drop entry below
// it, wait for the drop to land.
func (l *Loop) emptyLastSlot() error {
	s := l.settings

	if err := l.pointer.MoveToward(s.RecoverySlot, s.Center); err != nil {
		return err
	}
	if err := l.pointer.Click(input.ButtonRight); err != nil {
		return err
	}
	l.sleep(s.OpenSettle)

	if err := l.pointer.MoveToward(s.RecoveryDrop, s.Center); err != nil {
		return err
	}
	if err := l.pointer.Click(input.ButtonLeft); err != nil {
		return err
	}
	l.sleep(s.DropSettle)

	return nil
}
