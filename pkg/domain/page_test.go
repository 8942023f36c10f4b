package domain_test

import (
	"foodgram/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPage_Offset(t *testing.T) {
	require.Equal(t, uint(0), domain.Page{Number: 0, Size: 6}.Offset())
	require.Equal(t, uint(0), domain.Page{Number: 1, Size: 6}.Offset())
	require.Equal(t, uint(12), domain.Page{Number: 3, Size: 6}.Offset())
}

func TestPage_LastPage(t *testing.T) {
	p := domain.Page{Number: 1, Size: 6}
	require.Equal(t, uint(1), p.LastPage(0))
	require.Equal(t, uint(1), p.LastPage(6))
	require.Equal(t, uint(2), p.LastPage(7))
	require.Equal(t, uint(1), domain.Page{Number: 1}.LastPage(10))
}
