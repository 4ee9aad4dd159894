package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatchToSubscribers(t *testing.T) {
	d := NewDispatcher()
	placed := &recorder{}
	all := &recorder{}
	d.Subscribe(TowerPlaced, placed)
	d.SubscribeAll(all)

	d.Dispatch(Event{Type: TowerPlaced})
	d.Dispatch(Event{Type: WaveStarted})

	if len(placed.got) != 1 || placed.got[0] != TowerPlaced {
		t.Errorf("Expected one TowerPlaced, got %v", placed.got)
	}
	if len(all.got) != 2 || all.got[1] != WaveStarted {
		t.Errorf("Expected catch-all to see both events, got %v", all.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EnemyKilled, r)
	d.Unsubscribe(EnemyKilled, r)
	d.Dispatch(Event{Type: EnemyKilled})
	if len(r.got) != 0 {
		t.Errorf("Expected no events after unsubscribe, got %v", r.got)
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var data interface{}
	d.Subscribe(GameOver, ListenerFunc(func(e Event) { data = e.Data }))
	d.Dispatch(Event{Type: GameOver, Data: WaveData{Wave: 3}})
	if wd, ok := data.(WaveData); !ok || wd.Wave != 3 {
		t.Errorf("Expected WaveData{Wave: 3}, got %v", data)
	}
}
