package game

// Default layouts. '#' is wall, ' ' is empty, '@' is food and one of
// '^' 'v' '<' '>' places a snake head with that heading. Snakes are
// numbered in reading order.
const (
	OnePlayerBoard = `
################################################################################
#                                                                              #
#                                                                              #
#     v                                                                        #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                        @     #
#                                                                              #
#                                                                              #
################################################################################
`

	TwoPlayerBoard = `
################################################################################
#                                                                              #
#                                                                              #
#     v                                                                        #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                        @     #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#                                                                              #
#     ^                                                                        #
#                                                                              #
#                                                                              #
################################################################################
`
)
