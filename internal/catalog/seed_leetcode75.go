package catalog

var leetcode75Seed = []Problem{
	p("merge-strings-alternately", "Merge Strings Alternately", Easy, "Array / String"),
	p("greatest-common-divisor-of-strings", "Greatest Common Divisor of Strings", Easy, "Array / String"),
	p("kids-with-the-greatest-number-of-candies", "Kids With the Greatest Number of Candies", Easy, "Array / String"),
	p("can-place-flowers", "Can Place Flowers", Easy, "Array / String"),
	p("reverse-vowels-of-a-string", "Reverse Vowels of a String", Easy, "Array / String"),
	p("reverse-words-in-a-string", "Reverse Words in a String", Medium, "Array / String"),
	p("product-of-array-except-self", "Product of Array Except Self", Medium, "Array / String"),
	p("increasing-triplet-subsequence", "Increasing Triplet Subsequence", Medium, "Array / String"),
	p("string-compression", "String Compression", Medium, "Array / String"),

	p("move-zeroes", "Move Zeroes", Easy, "Two Pointers"),
	p("is-subsequence", "Is Subsequence", Easy, "Two Pointers"),
	p("container-with-most-water", "Container With Most Water", Medium, "Two Pointers"),
	p("max-number-of-k-sum-pairs", "Max Number of K-Sum Pairs", Medium, "Two Pointers"),

	p("maximum-average-subarray-i", "Maximum Average Subarray I", Easy, "Sliding Window"),
	p("maximum-number-of-vowels-in-a-substring-of-given-length", "Maximum Number of Vowels in a Substring of Given Length", Medium, "Sliding Window"),
	p("max-consecutive-ones-iii", "Max Consecutive Ones III", Medium, "Sliding Window"),
	p("longest-subarray-of-1s-after-deleting-one-element", "Longest Subarray of 1's After Deleting One Element", Medium, "Sliding Window"),

	p("find-the-highest-altitude", "Find the Highest Altitude", Easy, "Prefix Sum"),
	p("find-pivot-index", "Find Pivot Index", Easy, "Prefix Sum"),

	p("find-the-difference-of-two-arrays", "Find the Difference of Two Arrays", Easy, "Hash Map / Set"),
	p("unique-number-of-occurrences", "Unique Number of Occurrences", Easy, "Hash Map / Set"),
	p("determine-if-two-strings-are-close", "Determine if Two Strings Are Close", Medium, "Hash Map / Set"),
	p("equal-row-and-column-pairs", "Equal Row and Column Pairs", Medium, "Hash Map / Set"),

	p("removing-stars-from-a-string", "Removing Stars From a String", Medium, "Stack"),
	p("asteroid-collision", "Asteroid Collision", Medium, "Stack"),
	p("decode-string", "Decode String", Medium, "Stack"),

	p("number-of-recent-calls", "Number of Recent Calls", Easy, "Queue"),
	p("dota2-senate", "Dota2 Senate", Medium, "Queue"),

	p("delete-the-middle-node-of-a-linked-list", "Delete the Middle Node of a Linked List", Medium, "Linked List"),
	p("odd-even-linked-list", "Odd Even Linked List", Medium, "Linked List"),
	p("reverse-linked-list", "Reverse Linked List", Easy, "Linked List"),
	p("maximum-twin-sum-of-a-linked-list", "Maximum Twin Sum of a Linked List", Medium, "Linked List"),

	p("maximum-depth-of-binary-tree", "Maximum Depth of Binary Tree", Easy, "Binary Tree - DFS"),
	p("leaf-similar-trees", "Leaf-Similar Trees", Easy, "Binary Tree - DFS"),
	p("count-good-nodes-in-binary-tree", "Count Good Nodes in Binary Tree", Medium, "Binary Tree - DFS"),
	p("path-sum-iii", "Path Sum III", Medium, "Binary Tree - DFS"),
	p("longest-zigzag-path-in-a-binary-tree", "Longest ZigZag Path in a Binary Tree", Medium, "Binary Tree - DFS"),
	p("lowest-common-ancestor-of-a-binary-tree", "Lowest Common Ancestor of a Binary Tree", Medium, "Binary Tree - DFS"),

	p("binary-tree-right-side-view", "Binary Tree Right Side View", Medium, "Binary Tree - BFS"),
	p("maximum-level-sum-of-a-binary-tree", "Maximum Level Sum of a Binary Tree", Medium, "Binary Tree - BFS"),

	p("search-in-a-binary-search-tree", "Search in a Binary Search Tree", Easy, "Binary Search Tree"),
	p("delete-node-in-a-bst", "Delete Node in a BST", Medium, "Binary Search Tree"),

	p("keys-and-rooms", "Keys and Rooms", Medium, "Graphs - DFS"),
	p("number-of-provinces", "Number of Provinces", Medium, "Graphs - DFS"),
	p("reorder-routes-to-make-all-paths-lead-to-the-city-zero", "Reorder Routes to Make All Paths Lead to the City Zero", Medium, "Graphs - DFS"),
	p("evaluate-division", "Evaluate Division", Medium, "Graphs - DFS"),

	p("nearest-exit-from-entrance-in-maze", "Nearest Exit from Entrance in Maze", Medium, "Graphs - BFS"),
	p("rotting-oranges", "Rotting Oranges", Medium, "Graphs - BFS"),

	p("kth-largest-element-in-an-array", "Kth Largest Element in an Array", Medium, "Heap / Priority Queue"),
	p("smallest-number-in-infinite-set", "Smallest Number in Infinite Set", Medium, "Heap / Priority Queue"),
	p("maximum-subsequence-score", "Maximum Subsequence Score", Medium, "Heap / Priority Queue"),
	p("total-cost-to-hire-k-workers", "Total Cost to Hire K Workers", Medium, "Heap / Priority Queue"),

	p("guess-number-higher-or-lower", "Guess Number Higher or Lower", Easy, "Binary Search"),
	p("successful-pairs-of-spells-and-potions", "Successful Pairs of Spells and Potions", Medium, "Binary Search"),
	p("find-peak-element", "Find Peak Element", Medium, "Binary Search"),
	p("koko-eating-bananas", "Koko Eating Bananas", Medium, "Binary Search"),

	p("letter-combinations-of-a-phone-number", "Letter Combinations of a Phone Number", Medium, "Backtracking"),
	p("combination-sum-iii", "Combination Sum III", Medium, "Backtracking"),

	p("n-th-tribonacci-number", "N-th Tribonacci Number", Easy, "DP - 1D"),
	p("min-cost-climbing-stairs", "Min Cost Climbing Stairs", Easy, "DP - 1D"),
	p("house-robber", "House Robber", Medium, "DP - 1D"),
	p("domino-and-tromino-tiling", "Domino and Tromino Tiling", Medium, "DP - 1D"),

	p("unique-paths", "Unique Paths", Medium, "DP - Multidimensional"),
	p("longest-common-subsequence", "Longest Common Subsequence", Medium, "DP - Multidimensional"),
	p("best-time-to-buy-and-sell-stock-with-transaction-fee", "Best Time to Buy and Sell Stock with Transaction Fee", Medium, "DP - Multidimensional"),
	p("edit-distance", "Edit Distance", Medium, "DP - Multidimensional"),

	p("counting-bits", "Counting Bits", Easy, "Bit Manipulation"),
	p("single-number", "Single Number", Easy, "Bit Manipulation"),
	p("minimum-flips-to-make-a-or-b-equal-to-c", "Minimum Flips to Make a OR b Equal to c", Medium, "Bit Manipulation"),

	p("implement-trie-prefix-tree", "Implement Trie (Prefix Tree)", Medium, "Trie"),
	p("search-suggestions-system", "Search Suggestions System", Medium, "Trie"),

	p("non-overlapping-intervals", "Non-overlapping Intervals", Medium, "Intervals"),
	p("minimum-number-of-arrows-to-burst-balloons", "Minimum Number of Arrows to Burst Balloons", Medium, "Intervals"),

	p("daily-temperatures", "Daily Temperatures", Medium, "Monotonic Stack"),
	p("online-stock-span", "Online Stock Span", Medium, "Monotonic Stack"),
}
