package netstat

import (
	"fmt"
	"testing"

	"github.com/rileyhilliard/bwmon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const netstatFixture = `Name       Mtu   Network       Address            Ipkts Ierrs     Ibytes    Opkts Oerrs     Obytes  Coll
lo0        16384 <Link#1>                         52170     0    7212345    52170     0    7212345     0
lo0        16384 127           127.0.0.1          52170     -    7212345    52170     -    7212345     -
en0        1500  <Link#6>    a4:83:e7:12:34:56  1203456     0 1598765432   804321     0  123456789     0
en0        1500  192.168.1     192.168.1.20        98765     -   87654321    54321     -    7654321     -
en1*       1500  <Link#7>    a4:83:e7:12:34:57        0     0          0        0     0          0     0
`

func TestParseNetstat(t *testing.T) {
	ifaces, err := ParseNetstat(netstatFixture)
	require.NoError(t, err)
	require.Len(t, ifaces, 3)

	assert.Equal(t, "lo0", ifaces[0].Name)
	assert.Equal(t, Counters{RX: 7212345, TX: 7212345}, ifaces[0].Counters)

	assert.Equal(t, "en0", ifaces[1].Name)
	assert.Equal(t, Counters{RX: 1598765432, TX: 123456789}, ifaces[1].Counters)
	assert.Equal(t, uint64(1203456), ifaces[1].RXPackets)
	assert.Equal(t, uint64(804321), ifaces[1].TXPackets)

	assert.Equal(t, "en1", ifaces[2].Name, "trailing * marks a down interface")
}

func TestParseNetstat_NoHeader(t *testing.T) {
	ifaces, err := ParseNetstat("en0 1500 <Link#6> a4:83:e7:12:34:56 1 0 2 3 0 4 0\n")
	require.NoError(t, err)
	assert.Empty(t, ifaces)
}

func TestParseNetstat_TruncatedRow(t *testing.T) {
	_, err := ParseNetstat("Name Mtu Network Address Ipkts\nen0 1500 <Link#6> a4:83:e7:12:34:56 1 0 2 3\n")
	assert.Error(t, err)
}

func TestNetstatReader(t *testing.T) {
	var gotName string
	var gotArgs []string
	r := &NetstatReader{Run: func(name string, args ...string) ([]byte, error) {
		gotName, gotArgs = name, args
		return []byte(netstatFixture), nil
	}}

	c, err := r.ReadCounters("en0")
	require.NoError(t, err)
	assert.Equal(t, uint64(1598765432), c.RX)
	assert.Equal(t, "netstat", gotName)
	assert.Equal(t, []string{"-ibn"}, gotArgs)
}

func TestNetstatReader_RunFails(t *testing.T) {
	r := &NetstatReader{Run: func(string, ...string) ([]byte, error) {
		return nil, fmt.Errorf("executable file not found")
	}}

	_, err := r.ReadCounters("en0")
	assert.True(t, errors.IsCode(err, errors.ErrExec))
}
