package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	ClockLayout = "15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Clock devolve o "agora" no fuso da barbearia. Datas do domínio
// (hoje, mês corrente) sempre saem daqui.
type Clock interface {
	Now() time.Time
}

type ShopClock struct {
	loc *time.Location
}

func NewClock(tz string) ShopClock {
	return ShopClock{loc: Location(tz)}
}

func (c ShopClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock congela o tempo (testes e CLI).
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}

func CurrentMonth(c Clock) string {
	return c.Now().Format(MonthLayout)
}

func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func IsMonth(s string) bool {
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}

func IsClock(s string) bool {
	_, err := time.Parse(ClockLayout, s)
	return err == nil && len(s) == len(ClockLayout)
}
